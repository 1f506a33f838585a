package commands

import (
	"context"

	"github.com/google/uuid"

	reqdto "ecotrack/internal/handler/dto/request"
	"ecotrack/internal/infra"
	"ecotrack/internal/pkg/errs"
	"ecotrack/internal/usecase/shared"
)

var ErrProfileUserNotFound = errs.New("user not found")

type ProfileCommands interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, req reqdto.UpdateProfileRequest) error
}

type profileCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewProfileCommands(uow shared.UnitOfWork) ProfileCommands {
	return &profileCommandsImpl{uow: uow}
}

// UpdateProfile applies only the fields the caller sent; nil fields
// keep their stored values.
func (p *profileCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req reqdto.UpdateProfileRequest) error {
	change := shared.ProfileUpdate{
		Name:           req.Name,
		Country:        req.Country,
		AvatarURL:      req.AvatarURL,
		MarketingOptIn: req.MarketingOptIn,
	}

	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().UpdateProfile(ctx, userID, change); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrProfileUserNotFound
			}
			return errs.Mark(err, ErrStorageFailure)
		}
		return nil
	})
}
