package commands

import (
	"context"

	"github.com/google/uuid"

	reqdto "ecotrack/internal/handler/dto/request"
	"ecotrack/internal/pkg/config"
	"ecotrack/internal/pkg/errs"
	"ecotrack/internal/usecase/notify"
	"ecotrack/internal/usecase/shared"
)

var ErrInvalidVoucher = errs.New("invalid voucher")

type ContentCommands interface {
	CreateVoucher(ctx context.Context, req reqdto.CreateVoucherRequest) (uuid.UUID, error)
	CreateLocation(ctx context.Context, req reqdto.CreateLocationRequest) (uuid.UUID, error)
	CreateTip(ctx context.Context, req reqdto.CreateTipRequest) (uuid.UUID, error)
	SubmitFeedback(ctx context.Context, req reqdto.FeedbackRequest) (uuid.UUID, error)
}

type contentCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier *notify.Notifier
	mailCfg  config.MailConfig
}

func NewContentCommands(uow shared.UnitOfWork, notifier *notify.Notifier, mailCfg config.MailConfig) ContentCommands {
	return &contentCommandsImpl{
		uow:      uow,
		notifier: notifier,
		mailCfg:  mailCfg,
	}
}

func (c *contentCommandsImpl) CreateVoucher(ctx context.Context, req reqdto.CreateVoucherRequest) (uuid.UUID, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidVoucher)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Vouchers().Create(ctx, entity)
		if err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

func (c *contentCommandsImpl) CreateLocation(ctx context.Context, req reqdto.CreateLocationRequest) (uuid.UUID, error) {
	loc := shared.NewLocation{
		Name:     req.Name,
		Address:  req.Address,
		City:     req.City,
		Region:   req.Region,
		Lat:      req.Lat,
		Lng:      req.Lng,
		ImageURL: req.ImageURL,
	}

	var id uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Locations().Create(ctx, loc)
		if err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

func (c *contentCommandsImpl) CreateTip(ctx context.Context, req reqdto.CreateTipRequest) (uuid.UUID, error) {
	var id uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Tips().Create(ctx, req.Title, req.Content)
		if err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

func (c *contentCommandsImpl) SubmitFeedback(ctx context.Context, req reqdto.FeedbackRequest) (uuid.UUID, error) {
	var id uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Feedback().Create(ctx, req.Name, req.Email, req.Message)
		if err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	// Heads-up for the admin inbox; best-effort after commit.
	c.notifier.Enqueue(notify.FeedbackAlert(c.mailCfg.AdminInbox, req.Name, req.Email, req.Message))

	return id, nil
}
