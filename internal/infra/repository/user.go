package repository

import (
	"context"
	"time"

	"ecotrack/internal/domain/user"
	"ecotrack/internal/infra"
	"ecotrack/internal/infra/db"
	"ecotrack/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Upsert(ctx context.Context, u *user.User) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (id, name, email, country, password_hash, marketing_opt_in)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email) DO UPDATE SET
			name = EXCLUDED.name,
			country = EXCLUDED.country,
			marketing_opt_in = EXCLUDED.marketing_opt_in,
			updated_at = NOW()
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		u.ID(), u.Name(), u.Email().Value(), u.Country(), u.PasswordHash(), u.MarketingOptIn(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapDBErr("failed to upsert user", err)
	}

	return id, nil
}

func (r *UserRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	const query = `
		SELECT id, name, email, country, role, points, marketing_opt_in, avatar_url, last_tip_index
		FROM users
		WHERE id = $1
		FOR UPDATE`

	var snap shared.UserSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.Name, &snap.Email, &snap.Country, &snap.Role,
		&snap.Points, &snap.MarketingOptIn, &snap.AvatarURL, &snap.LastTipIndex,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapDBErr("failed to lock user row", err)
	}

	return &snap, nil
}

// DeductPoints is conditional so a concurrent deduction can never push
// the balance negative even without a prior row lock.
func (r *UserRepository) DeductPoints(ctx context.Context, id uuid.UUID, amount int) (int, error) {
	const query = `
		UPDATE users
		SET points = points - $1, updated_at = NOW()
		WHERE id = $2 AND points >= $1
		RETURNING points`

	var points int
	err := r.db.QueryRow(ctx, query, amount, id).Scan(&points)
	if err != nil {
		if infra.IsNoRows(err) {
			return 0, infra.WrapRepoErr(infra.KindConflict, "insufficient points", err)
		}
		return 0, infra.WrapDBErr("failed to deduct points", err)
	}

	return points, nil
}

func (r *UserRepository) AddPoints(ctx context.Context, id uuid.UUID, amount int) (int, error) {
	const query = `
		UPDATE users
		SET points = points + $1, updated_at = NOW()
		WHERE id = $2
		RETURNING points`

	var points int
	err := r.db.QueryRow(ctx, query, amount, id).Scan(&points)
	if err != nil {
		if infra.IsNoRows(err) {
			return 0, infra.WrapRepoErr(infra.KindNotFound, "user not found", err)
		}
		return 0, infra.WrapDBErr("failed to add points", err)
	}

	return points, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, change shared.ProfileUpdate) error {
	const query = `
		UPDATE users
		SET name = COALESCE($1, name),
		    country = COALESCE($2, country),
		    avatar_url = COALESCE($3, avatar_url),
		    marketing_opt_in = COALESCE($4, marketing_opt_in),
		    updated_at = NOW()
		WHERE id = $5`

	tag, err := r.db.Exec(ctx, query, change.Name, change.Country, change.AvatarURL, change.MarketingOptIn, id)
	if err != nil {
		return infra.WrapDBErr("failed to update profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "user not found")
	}

	return nil
}

func (r *UserRepository) SetResetToken(ctx context.Context, email string, token string, expiresAt time.Time) error {
	const query = `
		UPDATE users
		SET reset_token = $1, reset_token_expires = $2, updated_at = NOW()
		WHERE email = $3`

	tag, err := r.db.Exec(ctx, query, token, expiresAt, email)
	if err != nil {
		return infra.WrapDBErr("failed to set reset token", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "user not found")
	}

	return nil
}

func (r *UserRepository) FindByResetToken(ctx context.Context, token string, now time.Time) (*shared.UserSnapshot, error) {
	const query = `
		SELECT id, name, email, country, role, points, marketing_opt_in, avatar_url, last_tip_index
		FROM users
		WHERE reset_token = $1 AND reset_token_expires > $2`

	var snap shared.UserSnapshot
	err := r.db.QueryRow(ctx, query, token, now).Scan(
		&snap.ID, &snap.Name, &snap.Email, &snap.Country, &snap.Role,
		&snap.Points, &snap.MarketingOptIn, &snap.AvatarURL, &snap.LastTipIndex,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "reset token invalid or expired", err)
		}
		return nil, infra.WrapDBErr("failed to find user by reset token", err)
	}

	return &snap, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	const query = `
		UPDATE users
		SET password_hash = $1, reset_token = NULL, reset_token_expires = NULL, updated_at = NOW()
		WHERE id = $2`

	tag, err := r.db.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return infra.WrapDBErr("failed to update password", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "user not found")
	}

	return nil
}

func (r *UserRepository) UpdateTipCursor(ctx context.Context, id uuid.UUID, nextIndex int) error {
	const query = `
		UPDATE users
		SET last_tip_index = $1, updated_at = NOW()
		WHERE id = $2`

	if _, err := r.db.Exec(ctx, query, nextIndex, id); err != nil {
		return infra.WrapDBErr("failed to update tip cursor", err)
	}

	return nil
}
