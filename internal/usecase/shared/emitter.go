package shared

import (
	"context"
	"log/slog"

	"stock-ledger/internal/domain/stock"
	"stock-ledger/internal/pkg/clock"
)

// ChangeEmitter publishes StockChanged after a commit. Delivery is best
// effort: failures are logged and never surface to the caller.
type ChangeEmitter struct {
	notifier          Notifier
	lowStockThreshold int
	clock             clock.Clock
	logger            *slog.Logger
}

func NewChangeEmitter(notifier Notifier, lowStockThreshold int, clock clock.Clock, logger *slog.Logger) *ChangeEmitter {
	return &ChangeEmitter{
		notifier:          notifier,
		lowStockThreshold: lowStockThreshold,
		clock:             clock,
		logger:            logger,
	}
}

func (e *ChangeEmitter) Emit(ctx context.Context, rec *stock.Record, cause ChangeCause) {
	if rec == nil {
		return
	}
	event := NewStockChanged(rec, cause, e.lowStockThreshold, e.clock.Now())
	if err := e.notifier.Publish(ctx, event); err != nil {
		e.logger.Warn("failed to publish stock change",
			"product_id", event.ProductID,
			"location_id", event.LocationID,
			"cause", string(cause),
			"error", err.Error())
	}
}
