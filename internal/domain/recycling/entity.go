package recycling

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidMaterial = errors.New("invalid material type")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrNegativeWeight  = errors.New("weight must not be negative")
)

const (
	pointsPerItem = 5
	pointsPerKg   = 10
)

type Material string

const (
	MaterialPlastic  Material = "Plastic"
	MaterialAluminum Material = "Aluminum"
	MaterialGlass    Material = "Glass"
	MaterialPaper    Material = "Paper"
	MaterialOther    Material = "Other"
)

func (m Material) String() string {
	return string(m)
}

func (m Material) IsValid() bool {
	switch m {
	case MaterialPlastic, MaterialAluminum, MaterialGlass, MaterialPaper, MaterialOther:
		return true
	default:
		return false
	}
}

func NewMaterial(s string) (Material, error) {
	m := Material(s)
	if !m.IsValid() {
		return "", ErrInvalidMaterial
	}
	return m, nil
}

// Log records one drop-off. Points are computed once at construction
// and stored with the log so later formula changes never rewrite
// history.
type Log struct {
	id            uuid.UUID
	userID        uuid.UUID
	locationID    *uuid.UUID
	material      Material
	quantity      int
	weightKg      float64
	pointsAwarded int
	recycledAt    time.Time
}

func NewLog(userID uuid.UUID, locationID *uuid.UUID, material Material, quantity int, weightKg float64, recycledAt time.Time) (*Log, error) {
	if !material.IsValid() {
		return nil, ErrInvalidMaterial
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if weightKg < 0 {
		return nil, ErrNegativeWeight
	}
	return &Log{
		id:            uuid.New(),
		userID:        userID,
		locationID:    locationID,
		material:      material,
		quantity:      quantity,
		weightKg:      weightKg,
		pointsAwarded: PointsFor(quantity, weightKg),
		recycledAt:    recycledAt,
	}, nil
}

// PointsFor is the reward formula: 5 points per item plus 10 per kg.
func PointsFor(quantity int, weightKg float64) int {
	return quantity*pointsPerItem + int(weightKg*pointsPerKg)
}

func (l *Log) ID() uuid.UUID          { return l.id }
func (l *Log) UserID() uuid.UUID      { return l.userID }
func (l *Log) LocationID() *uuid.UUID { return l.locationID }
func (l *Log) Material() Material     { return l.material }
func (l *Log) Quantity() int          { return l.quantity }
func (l *Log) WeightKg() float64      { return l.weightKg }
func (l *Log) PointsAwarded() int     { return l.pointsAwarded }
func (l *Log) RecycledAt() time.Time  { return l.recycledAt }
