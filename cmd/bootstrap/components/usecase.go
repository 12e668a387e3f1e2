package components

import (
	"math/rand"
	"time"

	"github.com/dogecoinfoundation/doge-prize/internal/domain/pool"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/commands"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	commands.NewAuditRecorder,
	func() *pool.Picker {
		return pool.NewPicker(rand.NewSource(time.Now().UnixNano()))
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRedeemCommands,
		commands.NewTransferCommands,
		commands.NewPrizeCommands,
		commands.NewPoolCommands,
		commands.NewAuthCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPrizeQueries,
		queries.NewPoolQueries,
		queries.NewBalanceQueries,
		queries.NewWalletQueries,
		queries.NewAuditQueries,
	),
)
