package bootstrap

import (
	"stock-ledger/internal/pkg/config"

	"go.uber.org/fx"
)

// Config is loaded before the graph is built so the backend choice can
// shape which modules are wired.
func ConfigModule(cfg config.Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg),
	)
}
