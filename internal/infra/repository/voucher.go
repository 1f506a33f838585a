package repository

import (
	"context"

	"ecotrack/internal/domain/voucher"
	"ecotrack/internal/infra"
	"ecotrack/internal/infra/db"
	"ecotrack/internal/usecase/shared"

	"github.com/google/uuid"
)

type VoucherRepository struct {
	db db.DBTX
}

func NewVoucherRepository(db db.DBTX) *VoucherRepository {
	return &VoucherRepository{db: db}
}

func (r *VoucherRepository) Create(ctx context.Context, v *voucher.Voucher) (uuid.UUID, error) {
	const query = `
		INSERT INTO vouchers (id, title, description, image_url, points_required, stock, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		v.ID(), v.Title(), v.Description(), v.ImageURL(), v.PointsRequired(), v.Stock(), v.ExpiresAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapDBErr("failed to create voucher", err)
	}

	return id, nil
}

func (r *VoucherRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*shared.VoucherSnapshot, error) {
	const query = `
		SELECT id, title, description, image_url, points_required, stock, expires_at
		FROM vouchers
		WHERE id = $1
		FOR UPDATE`

	var snap shared.VoucherSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.Title, &snap.Description, &snap.ImageURL,
		&snap.PointsRequired, &snap.Stock, &snap.ExpiresAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "voucher not found", err)
		}
		return nil, infra.WrapDBErr("failed to lock voucher row", err)
	}

	return &snap, nil
}

// DecrementStock never drops below zero; the condition makes the last
// unit race safe even without the prior row lock.
func (r *VoucherRepository) DecrementStock(ctx context.Context, id uuid.UUID) error {
	const query = `
		UPDATE vouchers
		SET stock = stock - 1
		WHERE id = $1 AND stock > 0`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapDBErr("failed to decrement voucher stock", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindConflict, "voucher out of stock")
	}

	return nil
}
