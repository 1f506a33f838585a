package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type UserView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Country        string    `json:"country"`
	Role           string    `json:"role"`
	Points         int       `json:"points"`
	MarketingOptIn bool      `json:"marketing_opt_in"`
	AvatarURL      *string   `json:"avatar_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type VoucherView struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	ImageURL       string     `json:"image_url"`
	PointsRequired int        `json:"points_required"`
	Stock          int        `json:"stock"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type MarketplaceView struct {
	Vouchers []*VoucherView `json:"vouchers"`
	Points   *int           `json:"points,omitempty"`
}

type RedemptionView struct {
	ID             uuid.UUID `json:"id"`
	VoucherID      uuid.UUID `json:"voucher_id"`
	VoucherTitle   string    `json:"voucher_title"`
	PointsRequired int       `json:"points_required"`
	RedeemedAt     time.Time `json:"redeemed_at"`
}

type RecyclingLogView struct {
	ID            uuid.UUID  `json:"id"`
	LocationID    *uuid.UUID `json:"location_id,omitempty"`
	MaterialType  string     `json:"material_type"`
	Quantity      int        `json:"quantity"`
	WeightKg      float64    `json:"weight_kg"`
	PointsAwarded int        `json:"points_awarded"`
	RecycledAt    time.Time  `json:"recycled_at"`
}

type ProgressView struct {
	TotalQuantity int     `json:"total_quantity"`
	TotalWeightKg float64 `json:"total_weight_kg"`
	TotalPoints   int     `json:"total_points"`
	CurrentPoints int     `json:"current_points"`
}

type LeaderboardUserEntry struct {
	UserID        uuid.UUID `json:"user_id"`
	Name          string    `json:"name"`
	Country       string    `json:"country"`
	TotalQuantity int       `json:"total_quantity"`
}

type LeaderboardCountryEntry struct {
	Country       string `json:"country"`
	TotalQuantity int    `json:"total_quantity"`
}

type LocationView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Region    string    `json:"region"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	ImageURL  *string   `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type TipView struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type FeedbackView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
