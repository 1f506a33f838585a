package readstore

import (
	"context"

	"github.com/google/uuid"

	"ecotrack/internal/infra"
	"ecotrack/internal/infra/db"
	"ecotrack/internal/usecase/queries"
)

type RecyclingReadStore struct {
	db db.DBTX
}

func NewRecyclingReadStore(db db.DBTX) *RecyclingReadStore {
	return &RecyclingReadStore{db: db}
}

func (r *RecyclingReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.RecyclingLogView, error) {
	const query = `
		SELECT id, location_id, material_type, quantity, weight_kg, points_awarded, recycled_at
		FROM recycling_logs
		WHERE user_id = $1
		ORDER BY recycled_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapDBErr("failed to list recycling logs", err)
	}
	defer rows.Close()

	var views []*queries.RecyclingLogView
	for rows.Next() {
		var view queries.RecyclingLogView
		if err := rows.Scan(
			&view.ID, &view.LocationID, &view.MaterialType,
			&view.Quantity, &view.WeightKg, &view.PointsAwarded, &view.RecycledAt,
		); err != nil {
			return nil, infra.WrapDBErr("failed to scan recycling log", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapDBErr("failed to iterate recycling logs", err)
	}

	return views, nil
}

func (r *RecyclingReadStore) ProgressByUser(ctx context.Context, userID uuid.UUID) (*queries.ProgressView, error) {
	const query = `
		SELECT
			COALESCE(SUM(l.quantity), 0),
			COALESCE(SUM(l.weight_kg), 0),
			COALESCE(SUM(l.points_awarded), 0),
			u.points
		FROM users u
		LEFT JOIN recycling_logs l ON l.user_id = u.id
		WHERE u.id = $1
		GROUP BY u.points`

	var view queries.ProgressView
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&view.TotalQuantity, &view.TotalWeightKg, &view.TotalPoints, &view.CurrentPoints,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapDBErr("failed to compute progress", err)
	}

	return &view, nil
}
