package queries

import (
	"context"

	"github.com/google/uuid"
)

type RecyclingQueries interface {
	ListLogs(ctx context.Context, userID uuid.UUID) ([]*RecyclingLogView, error)
	GetProgress(ctx context.Context, userID uuid.UUID) (*ProgressView, error)
}

type RecyclingReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*RecyclingLogView, error)
	ProgressByUser(ctx context.Context, userID uuid.UUID) (*ProgressView, error)
}

type recyclingQueriesImpl struct {
	readStore RecyclingReadStore
}

func NewRecyclingQueries(readStore RecyclingReadStore) RecyclingQueries {
	return &recyclingQueriesImpl{readStore: readStore}
}

func (q *recyclingQueriesImpl) ListLogs(ctx context.Context, userID uuid.UUID) ([]*RecyclingLogView, error) {
	return q.readStore.ListByUser(ctx, userID)
}

func (q *recyclingQueriesImpl) GetProgress(ctx context.Context, userID uuid.UUID) (*ProgressView, error) {
	return q.readStore.ProgressByUser(ctx, userID)
}
