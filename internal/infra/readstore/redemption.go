package readstore

import (
	"context"

	"github.com/google/uuid"

	"ecotrack/internal/infra"
	"ecotrack/internal/infra/db"
	"ecotrack/internal/usecase/queries"
)

type RedemptionReadStore struct {
	db db.DBTX
}

func NewRedemptionReadStore(db db.DBTX) *RedemptionReadStore {
	return &RedemptionReadStore{db: db}
}

func (r *RedemptionReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.RedemptionView, error) {
	const query = `
		SELECT r.id, r.voucher_id, v.title, v.points_required, r.redeemed_at
		FROM redemptions r
		JOIN vouchers v ON v.id = r.voucher_id
		WHERE r.user_id = $1
		ORDER BY r.redeemed_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapDBErr("failed to list redemptions", err)
	}
	defer rows.Close()

	var views []*queries.RedemptionView
	for rows.Next() {
		var view queries.RedemptionView
		if err := rows.Scan(&view.ID, &view.VoucherID, &view.VoucherTitle, &view.PointsRequired, &view.RedeemedAt); err != nil {
			return nil, infra.WrapDBErr("failed to scan redemption", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapDBErr("failed to iterate redemptions", err)
	}

	return views, nil
}
