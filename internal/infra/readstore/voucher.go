package readstore

import (
	"context"

	"github.com/google/uuid"

	"ecotrack/internal/infra"
	"ecotrack/internal/infra/db"
	"ecotrack/internal/usecase/queries"
)

type VoucherReadStore struct {
	db db.DBTX
}

func NewVoucherReadStore(db db.DBTX) *VoucherReadStore {
	return &VoucherReadStore{db: db}
}

func (r *VoucherReadStore) ListActive(ctx context.Context) ([]*queries.VoucherView, error) {
	const query = `
		SELECT id, title, description, image_url, points_required, stock, expires_at, created_at
		FROM vouchers
		WHERE expires_at IS NULL OR expires_at > NOW()
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapDBErr("failed to list vouchers", err)
	}
	defer rows.Close()

	var views []*queries.VoucherView
	for rows.Next() {
		var view queries.VoucherView
		if err := rows.Scan(
			&view.ID, &view.Title, &view.Description, &view.ImageURL,
			&view.PointsRequired, &view.Stock, &view.ExpiresAt, &view.CreatedAt,
		); err != nil {
			return nil, infra.WrapDBErr("failed to scan voucher", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapDBErr("failed to iterate vouchers", err)
	}

	return views, nil
}

func (r *VoucherReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VoucherView, error) {
	const query = `
		SELECT id, title, description, image_url, points_required, stock, expires_at, created_at
		FROM vouchers
		WHERE id = $1`

	var view queries.VoucherView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Title, &view.Description, &view.ImageURL,
		&view.PointsRequired, &view.Stock, &view.ExpiresAt, &view.CreatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "voucher not found", err)
		}
		return nil, infra.WrapDBErr("failed to find voucher by ID", err)
	}

	return &view, nil
}
