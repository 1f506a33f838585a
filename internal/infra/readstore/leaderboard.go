package readstore

import (
	"context"

	"ecotrack/internal/infra"
	"ecotrack/internal/infra/db"
	"ecotrack/internal/usecase/queries"
)

type LeaderboardReadStore struct {
	db db.DBTX
}

func NewLeaderboardReadStore(db db.DBTX) *LeaderboardReadStore {
	return &LeaderboardReadStore{db: db}
}

func (r *LeaderboardReadStore) TopUsers(ctx context.Context, limit int) ([]*queries.LeaderboardUserEntry, error) {
	const query = `
		SELECT u.id, u.name, u.country, COALESCE(SUM(l.quantity), 0) AS total_quantity
		FROM users u
		JOIN recycling_logs l ON l.user_id = u.id
		GROUP BY u.id, u.name, u.country
		ORDER BY total_quantity DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, infra.WrapDBErr("failed to query top users", err)
	}
	defer rows.Close()

	var entries []*queries.LeaderboardUserEntry
	for rows.Next() {
		var entry queries.LeaderboardUserEntry
		if err := rows.Scan(&entry.UserID, &entry.Name, &entry.Country, &entry.TotalQuantity); err != nil {
			return nil, infra.WrapDBErr("failed to scan leaderboard entry", err)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapDBErr("failed to iterate leaderboard entries", err)
	}

	return entries, nil
}

func (r *LeaderboardReadStore) TopCountries(ctx context.Context, limit int) ([]*queries.LeaderboardCountryEntry, error) {
	const query = `
		SELECT u.country, COALESCE(SUM(l.quantity), 0) AS total_quantity
		FROM users u
		JOIN recycling_logs l ON l.user_id = u.id
		WHERE u.country <> ''
		GROUP BY u.country
		ORDER BY total_quantity DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, infra.WrapDBErr("failed to query top countries", err)
	}
	defer rows.Close()

	var entries []*queries.LeaderboardCountryEntry
	for rows.Next() {
		var entry queries.LeaderboardCountryEntry
		if err := rows.Scan(&entry.Country, &entry.TotalQuantity); err != nil {
			return nil, infra.WrapDBErr("failed to scan country entry", err)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapDBErr("failed to iterate country entries", err)
	}

	return entries, nil
}
