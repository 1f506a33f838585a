package queries

import (
	"context"
	"log/slog"
)

const (
	leaderboardLimit     = 10
	cacheKeyTopUsers     = "leaderboard:users"
	cacheKeyTopCountries = "leaderboard:countries"
)

type LeaderboardQueries interface {
	TopUsers(ctx context.Context) ([]*LeaderboardUserEntry, error)
	TopCountries(ctx context.Context) ([]*LeaderboardCountryEntry, error)
}

type LeaderboardReadStore interface {
	TopUsers(ctx context.Context, limit int) ([]*LeaderboardUserEntry, error)
	TopCountries(ctx context.Context, limit int) ([]*LeaderboardCountryEntry, error)
}

// ViewCache is a read-through cache; a nil implementation is never
// passed, the disabled cache reports misses and swallows writes.
type ViewCache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
}

type leaderboardQueriesImpl struct {
	readStore LeaderboardReadStore
	cache     ViewCache
}

func NewLeaderboardQueries(readStore LeaderboardReadStore, cache ViewCache) LeaderboardQueries {
	return &leaderboardQueriesImpl{
		readStore: readStore,
		cache:     cache,
	}
}

func (q *leaderboardQueriesImpl) TopUsers(ctx context.Context) ([]*LeaderboardUserEntry, error) {
	var cached []*LeaderboardUserEntry
	if hit, err := q.cache.GetJSON(ctx, cacheKeyTopUsers, &cached); err != nil {
		slog.Warn("leaderboard cache read failed", "key", cacheKeyTopUsers, "error", err.Error())
	} else if hit {
		return cached, nil
	}

	entries, err := q.readStore.TopUsers(ctx, leaderboardLimit)
	if err != nil {
		return nil, err
	}

	if err := q.cache.SetJSON(ctx, cacheKeyTopUsers, entries); err != nil {
		slog.Warn("leaderboard cache write failed", "key", cacheKeyTopUsers, "error", err.Error())
	}

	return entries, nil
}

func (q *leaderboardQueriesImpl) TopCountries(ctx context.Context) ([]*LeaderboardCountryEntry, error) {
	var cached []*LeaderboardCountryEntry
	if hit, err := q.cache.GetJSON(ctx, cacheKeyTopCountries, &cached); err != nil {
		slog.Warn("leaderboard cache read failed", "key", cacheKeyTopCountries, "error", err.Error())
	} else if hit {
		return cached, nil
	}

	entries, err := q.readStore.TopCountries(ctx, leaderboardLimit)
	if err != nil {
		return nil, err
	}

	if err := q.cache.SetJSON(ctx, cacheKeyTopCountries, entries); err != nil {
		slog.Warn("leaderboard cache write failed", "key", cacheKeyTopCountries, "error", err.Error())
	}

	return entries, nil
}
