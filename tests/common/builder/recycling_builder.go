//go:build unit || integration

package builder

import (
	"time"

	"ecotrack/internal/domain/recycling"
	reqdto "ecotrack/internal/handler/dto/request"

	"github.com/google/uuid"
)

type RecyclingLogBuilder struct {
	UserID       uuid.UUID
	LocationID   *uuid.UUID
	MaterialType string
	Quantity     int
	WeightKg     float64
	RecycledAt   time.Time
}

func NewRecyclingLogBuilder() *RecyclingLogBuilder {
	return &RecyclingLogBuilder{
		UserID:       uuid.New(),
		MaterialType: "Plastic",
		Quantity:     4,
		WeightKg:     1.5,
		RecycledAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (r *RecyclingLogBuilder) BuildDomain() (*recycling.Log, error) {
	material, err := recycling.NewMaterial(r.MaterialType)
	if err != nil {
		return nil, err
	}
	return recycling.NewLog(r.UserID, r.LocationID, material, r.Quantity, r.WeightKg, r.RecycledAt)
}

func (r *RecyclingLogBuilder) BuildDTO() reqdto.CreateRecyclingLogRequest {
	return reqdto.CreateRecyclingLogRequest{
		LocationID:   r.LocationID,
		MaterialType: r.MaterialType,
		Quantity:     r.Quantity,
		WeightKg:     r.WeightKg,
	}
}

// Fluent builder methods
func (r *RecyclingLogBuilder) WithMaterial(material string) *RecyclingLogBuilder {
	r.MaterialType = material
	return r
}

func (r *RecyclingLogBuilder) WithQuantity(quantity int) *RecyclingLogBuilder {
	r.Quantity = quantity
	return r
}

func (r *RecyclingLogBuilder) WithWeightKg(weight float64) *RecyclingLogBuilder {
	r.WeightKg = weight
	return r
}

func (r *RecyclingLogBuilder) WithLocation(id uuid.UUID) *RecyclingLogBuilder {
	r.LocationID = &id
	return r
}
