package bootstrap

import (
	"github.com/dogecoinfoundation/doge-prize/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	WalletModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
