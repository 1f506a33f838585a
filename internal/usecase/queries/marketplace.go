package queries

import (
	"context"

	"github.com/google/uuid"

	"ecotrack/internal/infra"
	"ecotrack/internal/pkg/errs"
)

var ErrVoucherNotFound = errs.New("voucher not found")

type MarketplaceQueries interface {
	// ListVouchers returns active vouchers, plus the caller's point
	// balance when userID is set.
	ListVouchers(ctx context.Context, userID *uuid.UUID) (*MarketplaceView, error)
	GetVoucher(ctx context.Context, id uuid.UUID) (*VoucherView, error)
	ListRedemptions(ctx context.Context, userID uuid.UUID) ([]*RedemptionView, error)
}

type VoucherReadStore interface {
	ListActive(ctx context.Context) ([]*VoucherView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*VoucherView, error)
}

type RedemptionReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*RedemptionView, error)
}

type marketplaceQueriesImpl struct {
	vouchers    VoucherReadStore
	redemptions RedemptionReadStore
	users       UserReadStore
}

func NewMarketplaceQueries(vouchers VoucherReadStore, redemptions RedemptionReadStore, users UserReadStore) MarketplaceQueries {
	return &marketplaceQueriesImpl{
		vouchers:    vouchers,
		redemptions: redemptions,
		users:       users,
	}
}

func (q *marketplaceQueriesImpl) ListVouchers(ctx context.Context, userID *uuid.UUID) (*MarketplaceView, error) {
	vouchers, err := q.vouchers.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	view := &MarketplaceView{Vouchers: vouchers}

	if userID != nil {
		user, err := q.users.FindByID(ctx, *userID)
		if err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				return nil, err
			}
		} else {
			view.Points = &user.Points
		}
	}

	return view, nil
}

func (q *marketplaceQueriesImpl) GetVoucher(ctx context.Context, id uuid.UUID) (*VoucherView, error) {
	voucher, err := q.vouchers.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVoucherNotFound
		}
		return nil, err
	}

	return voucher, nil
}

func (q *marketplaceQueriesImpl) ListRedemptions(ctx context.Context, userID uuid.UUID) ([]*RedemptionView, error) {
	return q.redemptions.ListByUser(ctx, userID)
}
