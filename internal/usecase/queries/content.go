package queries

import "context"

type ContentQueries interface {
	ListLocations(ctx context.Context) ([]*LocationView, error)
	ListTips(ctx context.Context) ([]*TipView, error)
	ListFeedback(ctx context.Context) ([]*FeedbackView, error)
}

type LocationReadStore interface {
	List(ctx context.Context) ([]*LocationView, error)
}

type TipReadStore interface {
	// List returns tips newest-first for display.
	List(ctx context.Context) ([]*TipView, error)
	// ListOldestFirst returns tips in rotation order for dispatch.
	ListOldestFirst(ctx context.Context) ([]*TipView, error)
}

type FeedbackReadStore interface {
	List(ctx context.Context) ([]*FeedbackView, error)
}

type contentQueriesImpl struct {
	locations LocationReadStore
	tips      TipReadStore
	feedback  FeedbackReadStore
}

func NewContentQueries(locations LocationReadStore, tips TipReadStore, feedback FeedbackReadStore) ContentQueries {
	return &contentQueriesImpl{
		locations: locations,
		tips:      tips,
		feedback:  feedback,
	}
}

func (q *contentQueriesImpl) ListLocations(ctx context.Context) ([]*LocationView, error) {
	return q.locations.List(ctx)
}

func (q *contentQueriesImpl) ListTips(ctx context.Context) ([]*TipView, error) {
	return q.tips.List(ctx)
}

func (q *contentQueriesImpl) ListFeedback(ctx context.Context) ([]*FeedbackView, error) {
	return q.feedback.List(ctx)
}
