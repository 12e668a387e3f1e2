package components

import (
	"github.com/dogecoinfoundation/doge-prize/internal/infra/readstore"
	"github.com/dogecoinfoundation/doge-prize/internal/infra/repository"
	"github.com/dogecoinfoundation/doge-prize/internal/infra/uow"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/commands"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/queries"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewReadDBTX,
	NewWriteDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewPrizeReadStore,
			fx.As(new(queries.PrizeReadStore)),
		),
		fx.Annotate(
			readstore.NewPoolReadStore,
			fx.As(new(queries.PoolReadStore)),
		),
		fx.Annotate(
			readstore.NewBalanceReadStore,
			fx.As(new(queries.BalanceReads)),
		),
		fx.Annotate(
			readstore.NewAuditReadStore,
			fx.As(new(queries.AuditReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			repository.NewAuditRepository,
			fx.As(new(commands.AuditInserter)),
		),
	),
)

func NewReadDBTX(pool *pgxpool.Pool) readstore.DBTX {
	return pool
}

func NewWriteDBTX(pool *pgxpool.Pool) repository.DBTX {
	return pool
}
