package components

import (
	"github.com/dogecoinfoundation/doge-prize/internal/handler"
	"github.com/dogecoinfoundation/doge-prize/internal/handler/api"
	"github.com/dogecoinfoundation/doge-prize/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRedeemHandler,
		api.NewTransferHandler,
		api.NewAuthHandler,
		api.NewPrizeHandler,
		api.NewPoolHandler,
		api.NewBalanceHandler,
		api.NewAuditHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	redeem *api.RedeemHandler,
	transfer *api.TransferHandler,
	auth *api.AuthHandler,
	prize *api.PrizeHandler,
	pool *api.PoolHandler,
	balance *api.BalanceHandler,
	audit *api.AuditHandler,
) handler.Handlers {
	return handler.Handlers{
		Redeem:   redeem,
		Transfer: transfer,
		Auth:     auth,
		Prize:    prize,
		Pool:     pool,
		Balance:  balance,
		Audit:    audit,
	}
}
