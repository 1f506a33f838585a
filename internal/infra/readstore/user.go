package readstore

import (
	"context"

	"github.com/google/uuid"

	"ecotrack/internal/infra"
	"ecotrack/internal/infra/db"
	"ecotrack/internal/usecase/queries"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const query = `
		SELECT id, name, email, country, role, points, marketing_opt_in, avatar_url, created_at
		FROM users
		WHERE id = $1`

	var view queries.UserView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Name, &view.Email, &view.Country, &view.Role,
		&view.Points, &view.MarketingOptIn, &view.AvatarURL, &view.CreatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapDBErr("failed to find user by ID", err)
	}

	return &view, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, *string, error) {
	const query = `
		SELECT id, name, email, country, role, points, marketing_opt_in, avatar_url, created_at, password_hash
		FROM users
		WHERE email = $1`

	var view queries.UserView
	var passwordHash *string
	err := r.db.QueryRow(ctx, query, email).Scan(
		&view.ID, &view.Name, &view.Email, &view.Country, &view.Role,
		&view.Points, &view.MarketingOptIn, &view.AvatarURL, &view.CreatedAt,
		&passwordHash,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", err)
		}
		return nil, nil, infra.WrapDBErr("failed to find user by email", err)
	}

	return &view, passwordHash, nil
}

func (r *UserReadStore) ListMarketingRecipients(ctx context.Context) ([]*queries.MarketingRecipient, error) {
	const query = `
		SELECT id, name, email, last_tip_index
		FROM users
		WHERE marketing_opt_in = TRUE
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapDBErr("failed to list marketing recipients", err)
	}
	defer rows.Close()

	var recipients []*queries.MarketingRecipient
	for rows.Next() {
		var rec queries.MarketingRecipient
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Email, &rec.LastTipIndex); err != nil {
			return nil, infra.WrapDBErr("failed to scan marketing recipient", err)
		}
		recipients = append(recipients, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapDBErr("failed to iterate marketing recipients", err)
	}

	return recipients, nil
}
