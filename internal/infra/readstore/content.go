package readstore

import (
	"context"

	"ecotrack/internal/infra"
	"ecotrack/internal/infra/db"
	"ecotrack/internal/usecase/queries"
)

type LocationReadStore struct {
	db db.DBTX
}

func NewLocationReadStore(db db.DBTX) *LocationReadStore {
	return &LocationReadStore{db: db}
}

func (r *LocationReadStore) List(ctx context.Context) ([]*queries.LocationView, error) {
	const query = `
		SELECT id, name, address, city, region, lat, lng, image_url, created_at
		FROM locations
		ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapDBErr("failed to list locations", err)
	}
	defer rows.Close()

	var views []*queries.LocationView
	for rows.Next() {
		var view queries.LocationView
		if err := rows.Scan(
			&view.ID, &view.Name, &view.Address, &view.City, &view.Region,
			&view.Lat, &view.Lng, &view.ImageURL, &view.CreatedAt,
		); err != nil {
			return nil, infra.WrapDBErr("failed to scan location", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapDBErr("failed to iterate locations", err)
	}

	return views, nil
}

type TipReadStore struct {
	db db.DBTX
}

func NewTipReadStore(db db.DBTX) *TipReadStore {
	return &TipReadStore{db: db}
}

func (r *TipReadStore) List(ctx context.Context) ([]*queries.TipView, error) {
	return r.list(ctx, `
		SELECT id, title, content, created_at
		FROM eco_tips
		ORDER BY created_at DESC`)
}

func (r *TipReadStore) ListOldestFirst(ctx context.Context) ([]*queries.TipView, error) {
	return r.list(ctx, `
		SELECT id, title, content, created_at
		FROM eco_tips
		ORDER BY created_at`)
}

func (r *TipReadStore) list(ctx context.Context, query string) ([]*queries.TipView, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapDBErr("failed to list eco tips", err)
	}
	defer rows.Close()

	var views []*queries.TipView
	for rows.Next() {
		var view queries.TipView
		if err := rows.Scan(&view.ID, &view.Title, &view.Content, &view.CreatedAt); err != nil {
			return nil, infra.WrapDBErr("failed to scan eco tip", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapDBErr("failed to iterate eco tips", err)
	}

	return views, nil
}

type FeedbackReadStore struct {
	db db.DBTX
}

func NewFeedbackReadStore(db db.DBTX) *FeedbackReadStore {
	return &FeedbackReadStore{db: db}
}

func (r *FeedbackReadStore) List(ctx context.Context) ([]*queries.FeedbackView, error) {
	const query = `
		SELECT id, name, email, message, created_at
		FROM feedback
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapDBErr("failed to list feedback", err)
	}
	defer rows.Close()

	var views []*queries.FeedbackView
	for rows.Next() {
		var view queries.FeedbackView
		if err := rows.Scan(&view.ID, &view.Name, &view.Email, &view.Message, &view.CreatedAt); err != nil {
			return nil, infra.WrapDBErr("failed to scan feedback", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapDBErr("failed to iterate feedback", err)
	}

	return views, nil
}
