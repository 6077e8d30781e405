package components

import (
	"context"
	"log/slog"

	"stock-ledger/internal/pkg/clock"
	"stock-ledger/internal/pkg/config"
	"stock-ledger/internal/usecase"
	"stock-ledger/internal/usecase/commands"
	"stock-ledger/internal/usecase/ledger"
	"stock-ledger/internal/usecase/queries"
	"stock-ledger/internal/usecase/shared"
	"stock-ledger/internal/usecase/sweeper"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseLedgerModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewChangeEmitter,
)

var usecaseLedgerModule = fx.Module("usecase/ledger",
	fx.Provide(
		ledger.NewLedger,
		func(l *ledger.Ledger) commands.Ledger { return l },
		func(l *ledger.Ledger) sweeper.Expirer { return l },
		sweeper.NewSweeper,
		func(s *sweeper.Sweeper) queries.ProductSweeper { return s },
	),
	fx.Invoke(registerSweeper),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewInventoryCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewInventoryQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewChangeEmitter(notifier shared.Notifier, clk clock.Clock, cfg config.Config, logger *slog.Logger) *shared.ChangeEmitter {
	return shared.NewChangeEmitter(notifier, cfg.Ledger.LowStockThreshold, clk, logger)
}

func registerSweeper(lc fx.Lifecycle, s *sweeper.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
}
