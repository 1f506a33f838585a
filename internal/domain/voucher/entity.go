package voucher

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle            = errors.New("voucher title must not be empty")
	ErrInvalidPointsRequired = errors.New("points required must be positive")
	ErrNegativeStock         = errors.New("stock must not be negative")
	ErrOutOfStock            = errors.New("voucher out of stock")
	ErrExpired               = errors.New("voucher expired")
)

type Voucher struct {
	id             uuid.UUID
	title          string
	description    string
	imageURL       string
	pointsRequired int
	stock          int
	expiresAt      *time.Time
	createdAt      time.Time
}

func NewVoucher(title, description, imageURL string, pointsRequired, stock int, expiresAt *time.Time) (*Voucher, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if pointsRequired <= 0 {
		return nil, ErrInvalidPointsRequired
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}
	return &Voucher{
		id:             uuid.New(),
		title:          title,
		description:    description,
		imageURL:       imageURL,
		pointsRequired: pointsRequired,
		stock:          stock,
		expiresAt:      expiresAt,
	}, nil
}

// Reconstruct rehydrates a voucher from storage without re-running
// creation validation.
func Reconstruct(id uuid.UUID, title, description, imageURL string, pointsRequired, stock int, expiresAt *time.Time) *Voucher {
	return &Voucher{
		id:             id,
		title:          title,
		description:    description,
		imageURL:       imageURL,
		pointsRequired: pointsRequired,
		stock:          stock,
		expiresAt:      expiresAt,
	}
}

func (v *Voucher) IsExpiredAt(t time.Time) bool {
	return v.expiresAt != nil && !t.Before(*v.expiresAt)
}

// ValidateRedemption checks the voucher side of a redemption at time t.
// Stock is checked before expiry; a voucher that is both depleted and
// expired reports out-of-stock.
func (v *Voucher) ValidateRedemption(t time.Time) error {
	if v.stock <= 0 {
		return ErrOutOfStock
	}
	if v.IsExpiredAt(t) {
		return ErrExpired
	}
	return nil
}

func (v *Voucher) ID() uuid.UUID         { return v.id }
func (v *Voucher) Title() string         { return v.title }
func (v *Voucher) Description() string   { return v.description }
func (v *Voucher) ImageURL() string      { return v.imageURL }
func (v *Voucher) PointsRequired() int   { return v.pointsRequired }
func (v *Voucher) Stock() int            { return v.stock }
func (v *Voucher) ExpiresAt() *time.Time { return v.expiresAt }
func (v *Voucher) CreatedAt() time.Time  { return v.createdAt }
