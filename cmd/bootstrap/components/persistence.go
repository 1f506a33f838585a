package components

import (
	"ecotrack/internal/infra/db"
	"ecotrack/internal/infra/readstore"
	"ecotrack/internal/infra/uow"
	"ecotrack/internal/usecase/queries"
	"ecotrack/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write-side repositories are created inside the unit of work so they
// always run on the transaction connection; only the UoW itself and the
// read stores are wired here.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewVoucherReadStore,
			fx.As(new(queries.VoucherReadStore)),
		),
		fx.Annotate(
			readstore.NewRedemptionReadStore,
			fx.As(new(queries.RedemptionReadStore)),
		),
		fx.Annotate(
			readstore.NewRecyclingReadStore,
			fx.As(new(queries.RecyclingReadStore)),
		),
		fx.Annotate(
			readstore.NewLeaderboardReadStore,
			fx.As(new(queries.LeaderboardReadStore)),
		),
		fx.Annotate(
			readstore.NewLocationReadStore,
			fx.As(new(queries.LocationReadStore)),
		),
		fx.Annotate(
			readstore.NewTipReadStore,
			fx.As(new(queries.TipReadStore)),
		),
		fx.Annotate(
			readstore.NewFeedbackReadStore,
			fx.As(new(queries.FeedbackReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
