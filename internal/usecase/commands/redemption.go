package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"ecotrack/internal/domain/voucher"
	"ecotrack/internal/infra"
	"ecotrack/internal/pkg/clock"
	"ecotrack/internal/pkg/config"
	"ecotrack/internal/pkg/errs"
	"ecotrack/internal/usecase/notify"
	"ecotrack/internal/usecase/shared"
)

var (
	ErrRedeemUserNotFound    = errs.New("user not found")
	ErrRedeemVoucherNotFound = errs.New("voucher not found")
	ErrVoucherOutOfStock     = errs.New("voucher out of stock")
	ErrVoucherExpired        = errs.New("voucher expired")
	ErrInsufficientPoints    = errs.New("insufficient points")
	ErrAlreadyRedeemed       = errs.New("voucher already redeemed")
	ErrStorageFailure        = errs.New("storage operation failed")
)

type RedeemReceipt struct {
	RedemptionID   uuid.UUID
	UpdatedPoints  int
	VoucherID      uuid.UUID
	VoucherTitle   string
	PointsRequired int
}

type RedemptionCommands interface {
	Redeem(ctx context.Context, userID, voucherID uuid.UUID) (*RedeemReceipt, error)
}

type redemptionCommandsImpl struct {
	uow       shared.UnitOfWork
	notifier  *notify.Notifier
	clock     clock.Clock
	singleUse bool
}

func NewRedemptionCommands(uow shared.UnitOfWork, notifier *notify.Notifier, clk clock.Clock, cfg config.RedeemConfig) RedemptionCommands {
	return &redemptionCommandsImpl{
		uow:       uow,
		notifier:  notifier,
		clock:     clk,
		singleUse: cfg.SingleUse,
	}
}

// Redeem atomically takes one unit of stock, deducts the voucher's
// cost from the user's balance and appends a redemption record. The
// voucher and user rows are locked first; the decrements are
// additionally conditional so neither stock nor points can go
// negative under any interleaving. The receipt email is enqueued only
// after the transaction has committed.
func (r *redemptionCommandsImpl) Redeem(ctx context.Context, userID, voucherID uuid.UUID) (*RedeemReceipt, error) {
	var (
		receipt   RedeemReceipt
		userName  string
		userEmail string
	)

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := r.clock.Now()

		voucherSnap, err := tx.Vouchers().FindForUpdate(ctx, voucherID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRedeemVoucherNotFound
			}
			return errs.Mark(err, ErrStorageFailure)
		}

		v := voucher.Reconstruct(
			voucherSnap.ID, voucherSnap.Title, voucherSnap.Description, voucherSnap.ImageURL,
			voucherSnap.PointsRequired, voucherSnap.Stock, voucherSnap.ExpiresAt,
		)
		if err := v.ValidateRedemption(now); err != nil {
			switch {
			case errors.Is(err, voucher.ErrOutOfStock):
				return ErrVoucherOutOfStock
			case errors.Is(err, voucher.ErrExpired):
				return ErrVoucherExpired
			default:
				return err
			}
		}

		userSnap, err := tx.Users().FindForUpdate(ctx, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRedeemUserNotFound
			}
			return errs.Mark(err, ErrStorageFailure)
		}

		if userSnap.Points < voucherSnap.PointsRequired {
			return ErrInsufficientPoints
		}

		if r.singleUse {
			redeemed, err := tx.Redemptions().ExistsByUserAndVoucher(ctx, userID, voucherID)
			if err != nil {
				return errs.Mark(err, ErrStorageFailure)
			}
			if redeemed {
				return ErrAlreadyRedeemed
			}
		}

		if err := tx.Vouchers().DecrementStock(ctx, voucherID); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrVoucherOutOfStock
			}
			return errs.Mark(err, ErrStorageFailure)
		}

		updatedPoints, err := tx.Users().DeductPoints(ctx, userID, voucherSnap.PointsRequired)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrInsufficientPoints
			}
			return errs.Mark(err, ErrStorageFailure)
		}

		redemptionID, err := tx.Redemptions().Append(ctx, userID, voucherID, now)
		if err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}

		receipt = RedeemReceipt{
			RedemptionID:   redemptionID,
			UpdatedPoints:  updatedPoints,
			VoucherID:      voucherSnap.ID,
			VoucherTitle:   voucherSnap.Title,
			PointsRequired: voucherSnap.PointsRequired,
		}
		userName = userSnap.Name
		userEmail = userSnap.Email
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.notifier.Enqueue(notify.RedemptionReceipt(
		userName, userEmail, receipt.VoucherTitle, receipt.PointsRequired, r.clock.Now(),
	))

	return &receipt, nil
}
