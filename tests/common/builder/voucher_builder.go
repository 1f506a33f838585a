//go:build unit || integration

package builder

import (
	"time"

	"ecotrack/internal/domain/voucher"
	"ecotrack/internal/usecase/queries"
	"ecotrack/internal/usecase/shared"

	"github.com/google/uuid"
)

type VoucherBuilder struct {
	Title          string
	Description    string
	ImageURL       string
	PointsRequired int
	Stock          int
	ExpiresAt      *time.Time
}

func NewVoucherBuilder() *VoucherBuilder {
	return &VoucherBuilder{
		Title:          "Free Coffee",
		Description:    "One free coffee at partner cafes",
		ImageURL:       "https://example.com/coffee.png",
		PointsRequired: 50,
		Stock:          10,
	}
}

func (v *VoucherBuilder) BuildDomain() (*voucher.Voucher, error) {
	return voucher.NewVoucher(v.Title, v.Description, v.ImageURL, v.PointsRequired, v.Stock, v.ExpiresAt)
}

func (v *VoucherBuilder) BuildSnapshot() *shared.VoucherSnapshot {
	return &shared.VoucherSnapshot{
		ID:             uuid.New(),
		Title:          v.Title,
		Description:    v.Description,
		ImageURL:       v.ImageURL,
		PointsRequired: v.PointsRequired,
		Stock:          v.Stock,
		ExpiresAt:      v.ExpiresAt,
	}
}

func (v *VoucherBuilder) BuildReadModel() *queries.VoucherView {
	return &queries.VoucherView{
		ID:             uuid.New(),
		Title:          v.Title,
		Description:    v.Description,
		ImageURL:       v.ImageURL,
		PointsRequired: v.PointsRequired,
		Stock:          v.Stock,
		ExpiresAt:      v.ExpiresAt,
		CreatedAt:      time.Now(),
	}
}

// Fluent builder methods
func (v *VoucherBuilder) WithTitle(title string) *VoucherBuilder {
	v.Title = title
	return v
}

func (v *VoucherBuilder) WithPointsRequired(points int) *VoucherBuilder {
	v.PointsRequired = points
	return v
}

func (v *VoucherBuilder) WithStock(stock int) *VoucherBuilder {
	v.Stock = stock
	return v
}

func (v *VoucherBuilder) WithExpiresAt(t time.Time) *VoucherBuilder {
	v.ExpiresAt = &t
	return v
}
