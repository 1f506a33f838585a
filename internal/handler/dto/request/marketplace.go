package request

import (
	"time"

	"github.com/google/uuid"

	"ecotrack/internal/domain/voucher"
)

type RedeemRequest struct {
	VoucherID uuid.UUID `json:"voucher_id" binding:"required"`
}

type CreateVoucherRequest struct {
	Title          string     `json:"title" binding:"required"`
	Description    string     `json:"description"`
	ImageURL       string     `json:"image_url"`
	PointsRequired int        `json:"points_required" binding:"required,gt=0"`
	Stock          int        `json:"stock" binding:"gte=0"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
}

func (r *CreateVoucherRequest) ToDomain() (*voucher.Voucher, error) {
	return voucher.NewVoucher(r.Title, r.Description, r.ImageURL, r.PointsRequired, r.Stock, r.ExpiresAt)
}
