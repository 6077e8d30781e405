package bootstrap

import (
	"stock-ledger/cmd/bootstrap/components"
	"stock-ledger/internal/pkg/config"

	"go.uber.org/fx"
)

func NewModule(cfg config.Config) fx.Option {
	return fx.Options(
		ConfigModule(cfg),
		LoggerModule,
		JWTModule,
		persistenceModule(cfg.Ledger.StoreBackend),
		components.NotifyModule,
		components.UseCaseModule,
		components.HandlerModule,
	)
}

func persistenceModule(backend string) fx.Option {
	if backend == config.StoreBackendMemory {
		return components.MemoryPersistenceModule
	}
	return fx.Options(
		DBModule,
		components.PostgresPersistenceModule,
	)
}
