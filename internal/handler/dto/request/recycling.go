package request

import (
	"github.com/google/uuid"
)

type CreateRecyclingLogRequest struct {
	LocationID   *uuid.UUID `json:"location_id,omitempty"`
	MaterialType string     `json:"material_type" binding:"required"`
	Quantity     int        `json:"quantity" binding:"required,gt=0"`
	WeightKg     float64    `json:"weight_kg" binding:"gte=0"`
}
