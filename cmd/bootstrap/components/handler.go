package components

import (
	"ecotrack/internal/handler"
	"ecotrack/internal/handler/api"
	"ecotrack/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewProfileHandler,
		api.NewMarketplaceHandler,
		api.NewRecyclingHandler,
		api.NewLeaderboardHandler,
		api.NewContentHandler,
		middleware.NewAuthMiddleware,
		func(
			auth *api.AuthHandler,
			profile *api.ProfileHandler,
			marketplace *api.MarketplaceHandler,
			recycling *api.RecyclingHandler,
			leaderboard *api.LeaderboardHandler,
			content *api.ContentHandler,
		) handler.Handlers {
			return handler.Handlers{
				Auth:        auth,
				Profile:     profile,
				Marketplace: marketplace,
				Recycling:   recycling,
				Leaderboard: leaderboard,
				Content:     content,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
