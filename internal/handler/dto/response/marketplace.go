package response

import (
	"github.com/google/uuid"

	"ecotrack/internal/usecase/commands"
)

type RedeemedVoucher struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	PointsRequired int       `json:"points_required"`
}

type RedeemResponse struct {
	Message       string          `json:"message"`
	UpdatedPoints int             `json:"updated_points"`
	Voucher       RedeemedVoucher `json:"voucher"`
}

func FromRedeemReceipt(receipt *commands.RedeemReceipt) *RedeemResponse {
	return &RedeemResponse{
		Message:       "Voucher redeemed.",
		UpdatedPoints: receipt.UpdatedPoints,
		Voucher: RedeemedVoucher{
			ID:             receipt.VoucherID,
			Title:          receipt.VoucherTitle,
			PointsRequired: receipt.PointsRequired,
		},
	}
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}
