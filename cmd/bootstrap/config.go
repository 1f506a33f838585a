package bootstrap

import (
	"ecotrack/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.MailConfig { return cfg.Mail },
		func(cfg config.Config) config.RedeemConfig { return cfg.Redeem },
	),
)
