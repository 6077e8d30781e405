package components

import (
	"stock-ledger/internal/infra/memory"
	sqlc "stock-ledger/internal/infra/sqlc/generated"
	"stock-ledger/internal/infra/uow"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PostgresPersistenceModule = fx.Module("persistence/postgres",
	fx.Provide(
		NewSQLQueries,
		uow.NewPostgresUoW,
	),
)

var MemoryPersistenceModule = fx.Module("persistence/memory",
	fx.Provide(
		memory.NewStore,
		memory.NewUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}
