package notify

import (
	"context"
	"errors"

	"stock-ledger/internal/usecase/shared"
)

// Fanout delivers each event to every sink and joins their errors.
type Fanout struct {
	sinks []shared.Notifier
}

func NewFanout(sinks ...shared.Notifier) *Fanout {
	return &Fanout{sinks: sinks}
}

func (f *Fanout) Publish(ctx context.Context, event shared.StockChanged) error {
	var errList []error
	for _, sink := range f.sinks {
		if err := sink.Publish(ctx, event); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}
