package mailer

import (
	"context"
	"log/slog"

	mail "github.com/wneessen/go-mail"

	"ecotrack/internal/pkg/config"
	"ecotrack/internal/pkg/errs"
)

// Mailer sends a single HTML message. Implementations are best-effort;
// callers decide whether a failure matters.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type SMTPMailer struct {
	client *mail.Client
	from   string
}

func NewSMTPMailer(cfg config.MailConfig) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.User),
		mail.WithPassword(cfg.Password),
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create mail client")
	}

	return &SMTPMailer{
		client: client,
		from:   cfg.From,
	}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return errs.Wrap(err, "invalid sender address")
	}
	if err := msg.To(to); err != nil {
		return errs.Wrap(err, "invalid recipient address")
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errs.Wrap(err, "failed to send mail")
	}

	return nil
}

// NoopMailer logs instead of sending; used when MAIL_HOST is unset.
type NoopMailer struct{}

func NewNoopMailer() *NoopMailer {
	return &NoopMailer{}
}

func (NoopMailer) Send(_ context.Context, to, subject, _ string) error {
	slog.Info("mail disabled, skipping send", "to", to, "subject", subject)
	return nil
}

var (
	_ Mailer = (*SMTPMailer)(nil)
	_ Mailer = NoopMailer{}
)
