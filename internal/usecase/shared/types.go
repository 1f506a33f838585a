package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side reads inside transactions.

type UserSnapshot struct {
	ID             uuid.UUID
	Name           string
	Email          string
	Country        string
	Role           string
	Points         int
	MarketingOptIn bool
	AvatarURL      *string
	LastTipIndex   int
}

type VoucherSnapshot struct {
	ID             uuid.UUID
	Title          string
	Description    string
	ImageURL       string
	PointsRequired int
	Stock          int
	ExpiresAt      *time.Time
}

type NewLocation struct {
	Name     string
	Address  string
	City     string
	Region   string
	Lat      float64
	Lng      float64
	ImageURL *string
}
