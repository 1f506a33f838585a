package repository

import (
	"context"

	"ecotrack/internal/infra"
	"ecotrack/internal/infra/db"
	"ecotrack/internal/usecase/shared"

	"github.com/google/uuid"
)

type LocationRepository struct {
	db db.DBTX
}

func NewLocationRepository(db db.DBTX) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) Create(ctx context.Context, loc shared.NewLocation) (uuid.UUID, error) {
	const query = `
		INSERT INTO locations (name, address, city, region, lat, lng, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		loc.Name, loc.Address, loc.City, loc.Region, loc.Lat, loc.Lng, loc.ImageURL,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapDBErr("failed to create location", err)
	}

	return id, nil
}

type TipRepository struct {
	db db.DBTX
}

func NewTipRepository(db db.DBTX) *TipRepository {
	return &TipRepository{db: db}
}

func (r *TipRepository) Create(ctx context.Context, title, content string) (uuid.UUID, error) {
	const query = `
		INSERT INTO eco_tips (title, content)
		VALUES ($1, $2)
		RETURNING id`

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, title, content).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapDBErr("failed to create eco tip", err)
	}

	return id, nil
}

type FeedbackRepository struct {
	db db.DBTX
}

func NewFeedbackRepository(db db.DBTX) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) Create(ctx context.Context, name, email, message string) (uuid.UUID, error) {
	const query = `
		INSERT INTO feedback (name, email, message)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, name, email, message).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapDBErr("failed to create feedback", err)
	}

	return id, nil
}
