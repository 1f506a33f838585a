package bootstrap

import (
	"log/slog"

	"ecotrack/internal/infra/cache"
	"ecotrack/internal/pkg/config"
	"ecotrack/internal/usecase/queries"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewViewCache,
	),
)

// NewViewCache uses Redis when REDIS_ADDR is set; otherwise every read
// is a miss and the leaderboard queries hit the database directly.
func NewViewCache(cfg config.Config) queries.ViewCache {
	if cfg.Redis.Addr == "" {
		slog.Info("redis disabled, leaderboard cache off")
		return cache.NewDisabledCache()
	}
	return cache.NewRedisCache(cfg.Redis)
}
