package commands

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"ecotrack/internal/domain/user"
	reqdto "ecotrack/internal/handler/dto/request"
	"ecotrack/internal/infra"
	"ecotrack/internal/pkg/clock"
	"ecotrack/internal/pkg/config"
	"ecotrack/internal/pkg/errs"
	"ecotrack/internal/pkg/jwt"
	"ecotrack/internal/pkg/password"
	"ecotrack/internal/usecase/notify"
	"ecotrack/internal/usecase/queries"
	"ecotrack/internal/usecase/shared"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrRegistrationFailed   = errs.New("registration failed")
	ErrResetTokenInvalid    = errs.New("reset token invalid or expired")
)

const resetTokenTTL = time.Hour

type AuthResult struct {
	UserID      uuid.UUID
	AccessToken string
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error)
	// ForgotPassword never reveals whether the email exists.
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	notifier   *notify.Notifier
	clock      clock.Clock
	mailCfg    config.MailConfig
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	readStore queries.UserReadStore,
	jwtService *jwt.Service,
	notifier *notify.Notifier,
	clk clock.Clock,
	mailCfg config.MailConfig,
) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		notifier:   notifier,
		clock:      clk,
		mailCfg:    mailCfg,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrRegistrationFailed)
	}

	var passwordHash *string
	if req.Password != nil {
		pw, err := user.NewPassword(*req.Password)
		if err != nil {
			return nil, errs.Mark(err, ErrRegistrationFailed)
		}
		hash, err := password.HashPassword(pw.Value())
		if err != nil {
			return nil, errs.Mark(err, ErrRegistrationFailed)
		}
		passwordHash = &hash
	}

	entity, err := user.NewUser(req.Name, email, req.Country, passwordHash, req.MarketingOptIn)
	if err != nil {
		return nil, errs.Mark(err, ErrRegistrationFailed)
	}

	var userID uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Returns the existing row's ID when the email is taken, so
		// re-registering is an update rather than a failure.
		id, err := tx.Users().Upsert(ctx, entity)
		if err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		userID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	accessToken, err := a.jwtService.GenerateToken(userID, user.RoleMember)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{UserID: userID, AccessToken: accessToken}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	// Same error for unknown email and wrong password to prevent user
	// enumeration.
	view, hash, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if hash == nil {
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(*hash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	accessToken, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{UserID: view.ID, AccessToken: accessToken}, nil
}

func (a *authCommandsImpl) ForgotPassword(ctx context.Context, email string) error {
	token, err := generateResetToken()
	if err != nil {
		return errs.Mark(err, ErrAuthenticationFailed)
	}

	expiresAt := a.clock.Now().Add(resetTokenTTL)

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().SetResetToken(ctx, email, token, expiresAt)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Swallow: the response must not leak account existence.
			slog.Info("password reset requested for unknown email")
			return nil
		}
		return errs.Mark(err, ErrStorageFailure)
	}

	a.notifier.Enqueue(notify.PasswordReset(email, a.mailCfg.ResetURLBase+"/"+token))
	return nil
}

func (a *authCommandsImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	pw, err := user.NewPassword(newPassword)
	if err != nil {
		return errs.Mark(err, ErrResetTokenInvalid)
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return errs.Mark(err, ErrAuthenticationFailed)
	}

	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Users().FindByResetToken(ctx, token, a.clock.Now())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrResetTokenInvalid
			}
			return errs.Mark(err, ErrStorageFailure)
		}

		if err := tx.Users().UpdatePassword(ctx, snap.ID, hash); err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		return nil
	})
}

func generateResetToken() (string, error) {
	var buf [32]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf[:]), nil
}
