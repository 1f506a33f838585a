package bootstrap

import (
	"context"
	"log/slog"

	"ecotrack/internal/infra/mailer"
	"ecotrack/internal/pkg/config"
	"ecotrack/internal/usecase/notify"

	"go.uber.org/fx"
)

var MailModule = fx.Module("mail",
	fx.Provide(
		NewMailer,
		NewNotifier,
	),
)

// NewMailer picks the SMTP mailer when MAIL_HOST is set, otherwise the
// logging no-op so the service runs without a mail account.
func NewMailer(cfg config.Config) (mailer.Mailer, error) {
	if cfg.Mail.Host == "" {
		slog.Info("mail disabled, notifications will be logged only")
		return mailer.NewNoopMailer(), nil
	}
	return mailer.NewSMTPMailer(cfg.Mail)
}

func NewNotifier(lc fx.Lifecycle, m mailer.Mailer) *notify.Notifier {
	n := notify.NewNotifier(m)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			n.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return n.Stop(ctx)
		},
	})

	return n
}
