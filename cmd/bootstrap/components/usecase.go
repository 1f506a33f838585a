package components

import (
	"ecotrack/internal/pkg/clock"
	"ecotrack/internal/usecase/commands"
	"ecotrack/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewProfileCommands,
		commands.NewRedemptionCommands,
		commands.NewRecyclingCommands,
		commands.NewContentCommands,
		commands.NewTipCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewMarketplaceQueries,
		queries.NewRecyclingQueries,
		queries.NewLeaderboardQueries,
		queries.NewContentQueries,
	),
)
