package repository

import (
	"context"
	"time"

	"ecotrack/internal/infra"
	"ecotrack/internal/infra/db"

	"github.com/google/uuid"
)

type RedemptionRepository struct {
	db db.DBTX
}

func NewRedemptionRepository(db db.DBTX) *RedemptionRepository {
	return &RedemptionRepository{db: db}
}

func (r *RedemptionRepository) Append(ctx context.Context, userID, voucherID uuid.UUID, redeemedAt time.Time) (uuid.UUID, error) {
	const query = `
		INSERT INTO redemptions (user_id, voucher_id, redeemed_at)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query, userID, voucherID, redeemedAt).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapDBErr("failed to append redemption", err)
	}

	return id, nil
}

func (r *RedemptionRepository) ExistsByUserAndVoucher(ctx context.Context, userID, voucherID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM redemptions WHERE user_id = $1 AND voucher_id = $2
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, voucherID).Scan(&exists); err != nil {
		return false, infra.WrapDBErr("failed to check redemption existence", err)
	}

	return exists, nil
}
