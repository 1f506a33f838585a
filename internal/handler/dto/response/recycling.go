package response

import (
	"github.com/google/uuid"

	"ecotrack/internal/usecase/commands"
)

type LogActivityResponse struct {
	ID            uuid.UUID `json:"id"`
	PointsAwarded int       `json:"points_awarded"`
	UpdatedPoints int       `json:"updated_points"`
}

func FromLogActivityResult(result *commands.LogActivityResult) *LogActivityResponse {
	return &LogActivityResponse{
		ID:            result.LogID,
		PointsAwarded: result.PointsAwarded,
		UpdatedPoints: result.UpdatedPoints,
	}
}

type DispatchResponse struct {
	Recipients int `json:"recipients"`
	Sent       int `json:"sent"`
	Failed     int `json:"failed"`
}
