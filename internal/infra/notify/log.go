package notify

import (
	"context"
	"log/slog"

	"stock-ledger/internal/usecase/shared"
)

type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Publish(ctx context.Context, event shared.StockChanged) error {
	level := slog.LevelInfo
	if event.LowStock {
		level = slog.LevelWarn
	}
	n.logger.Log(ctx, level, "stock changed",
		"product_id", event.ProductID,
		"location_id", event.LocationID,
		"on_hand", event.OnHand,
		"reserved", event.Reserved,
		"available", event.Available,
		"low_stock", event.LowStock,
		"cause", string(event.Cause),
	)
	return nil
}
