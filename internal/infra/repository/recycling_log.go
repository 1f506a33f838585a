package repository

import (
	"context"

	"ecotrack/internal/domain/recycling"
	"ecotrack/internal/infra"
	"ecotrack/internal/infra/db"

	"github.com/google/uuid"
)

type RecyclingLogRepository struct {
	db db.DBTX
}

func NewRecyclingLogRepository(db db.DBTX) *RecyclingLogRepository {
	return &RecyclingLogRepository{db: db}
}

func (r *RecyclingLogRepository) Create(ctx context.Context, log *recycling.Log) (uuid.UUID, error) {
	const query = `
		INSERT INTO recycling_logs (id, user_id, location_id, material_type, quantity, weight_kg, points_awarded, recycled_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		log.ID(), log.UserID(), log.LocationID(), log.Material().String(),
		log.Quantity(), log.WeightKg(), log.PointsAwarded(), log.RecycledAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapDBErr("failed to create recycling log", err)
	}

	return id, nil
}
