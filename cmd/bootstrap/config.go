package bootstrap

import (
	"github.com/dogecoinfoundation/doge-prize/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
