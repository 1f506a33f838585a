package commands

import (
	"context"
	"log/slog"

	"ecotrack/internal/infra/mailer"
	"ecotrack/internal/pkg/errs"
	"ecotrack/internal/usecase/notify"
	"ecotrack/internal/usecase/queries"
	"ecotrack/internal/usecase/shared"
)

var ErrNoTipsAvailable = errs.New("no eco tips available")

type DispatchResult struct {
	Recipients int
	Sent       int
	Failed     int
}

type TipCommands interface {
	// DispatchTips mails every opted-in user the tip at their cursor
	// and advances the cursor modulo the tip count. Per-user failures
	// are logged and skipped; the cursor only advances on success.
	DispatchTips(ctx context.Context) (*DispatchResult, error)
}

type tipCommandsImpl struct {
	uow    shared.UnitOfWork
	users  queries.UserReadStore
	tips   queries.TipReadStore
	mailer mailer.Mailer
}

func NewTipCommands(uow shared.UnitOfWork, users queries.UserReadStore, tips queries.TipReadStore, m mailer.Mailer) TipCommands {
	return &tipCommandsImpl{
		uow:    uow,
		users:  users,
		tips:   tips,
		mailer: m,
	}
}

func (t *tipCommandsImpl) DispatchTips(ctx context.Context) (*DispatchResult, error) {
	tips, err := t.tips.ListOldestFirst(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	if len(tips) == 0 {
		return nil, ErrNoTipsAvailable
	}

	recipients, err := t.users.ListMarketingRecipients(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	result := &DispatchResult{Recipients: len(recipients)}

	for _, rec := range recipients {
		tip := tips[rec.LastTipIndex%len(tips)]

		msg := notify.EcoTip(rec.Name, rec.Email, tip.Title, tip.Content)
		if err := t.mailer.Send(ctx, msg.To, msg.Subject, msg.HTMLBody); err != nil {
			slog.Warn("tip send failed", "user_id", rec.ID, "error", err.Error())
			result.Failed++
			continue
		}

		nextIndex := (rec.LastTipIndex + 1) % len(tips)
		err = t.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Users().UpdateTipCursor(ctx, rec.ID, nextIndex)
		})
		if err != nil {
			slog.Warn("tip cursor update failed", "user_id", rec.ID, "error", err.Error())
		}

		result.Sent++
	}

	return result, nil
}
