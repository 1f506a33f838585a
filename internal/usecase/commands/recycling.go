package commands

import (
	"context"

	"github.com/google/uuid"

	"ecotrack/internal/domain/recycling"
	reqdto "ecotrack/internal/handler/dto/request"
	"ecotrack/internal/infra"
	"ecotrack/internal/pkg/clock"
	"ecotrack/internal/pkg/errs"
	"ecotrack/internal/usecase/shared"
)

var (
	ErrInvalidMaterial      = errs.New("invalid material type")
	ErrInvalidActivity      = errs.New("invalid recycling activity")
	ErrActivityUserNotFound = errs.New("user not found")
)

type LogActivityResult struct {
	LogID         uuid.UUID
	PointsAwarded int
	UpdatedPoints int
}

type RecyclingCommands interface {
	LogActivity(ctx context.Context, userID uuid.UUID, req reqdto.CreateRecyclingLogRequest) (*LogActivityResult, error)
}

type recyclingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRecyclingCommands(uow shared.UnitOfWork, clk clock.Clock) RecyclingCommands {
	return &recyclingCommandsImpl{uow: uow, clock: clk}
}

// LogActivity inserts the log and credits the earned points in the
// same transaction, so a crash can never award points without a log
// or vice versa.
func (r *recyclingCommandsImpl) LogActivity(ctx context.Context, userID uuid.UUID, req reqdto.CreateRecyclingLogRequest) (*LogActivityResult, error) {
	material, err := recycling.NewMaterial(req.MaterialType)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidMaterial)
	}

	entity, err := recycling.NewLog(userID, req.LocationID, material, req.Quantity, req.WeightKg, r.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidActivity)
	}

	var result LogActivityResult
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		logID, err := tx.RecyclingLogs().Create(ctx, entity)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrActivityUserNotFound
			}
			return errs.Mark(err, ErrStorageFailure)
		}

		updatedPoints, err := tx.Users().AddPoints(ctx, userID, entity.PointsAwarded())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrActivityUserNotFound
			}
			return errs.Mark(err, ErrStorageFailure)
		}

		result = LogActivityResult{
			LogID:         logID,
			PointsAwarded: entity.PointsAwarded(),
			UpdatedPoints: updatedPoints,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
