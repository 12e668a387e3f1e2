package bootstrap

import (
	"github.com/dogecoinfoundation/doge-prize/internal/infra/wallet"
	"github.com/dogecoinfoundation/doge-prize/internal/pkg/config"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/commands"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/queries"

	"go.uber.org/fx"
)

var WalletModule = fx.Module("wallet",
	fx.Provide(
		fx.Annotate(
			NewWalletClient,
			fx.As(new(commands.WalletSender)),
			fx.As(new(queries.WalletReader)),
		),
	),
)

func NewWalletClient(cfg config.Config) *wallet.Client {
	return wallet.NewClient(cfg.Dogecoin)
}
