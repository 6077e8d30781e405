package shared

import (
	"context"
	"time"

	"stock-ledger/internal/domain/reservation"
	"stock-ledger/internal/domain/stock"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for consistent multi-table reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one transaction. Locks taken through
// GetForUpdate are held until the transaction ends.
type Tx interface {
	Stocks() StockRepository
	Reservations() ReservationRepository
	Adjustments() AdjustmentRepository
}

type StockRepository interface {
	Get(ctx context.Context, key stock.Key) (*stock.Record, error)
	GetForUpdate(ctx context.Context, key stock.Key) (*stock.Record, error)
	Create(ctx context.Context, rec *stock.Record) error
	Save(ctx context.Context, rec *stock.Record) error
}

type ReservationRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Create(ctx context.Context, res *reservation.Reservation) error
	Save(ctx context.Context, res *reservation.Reservation) error
	ListDueHeld(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
	ListDueHeldByKey(ctx context.Context, key stock.Key, now time.Time) ([]uuid.UUID, error)
	SumHeld(ctx context.Context, key stock.Key) (int, error)
	AppendEvent(ctx context.Context, ev reservation.Event) error
	ListEvents(ctx context.Context, id uuid.UUID) ([]reservation.Event, error)
}

type AdjustmentRepository interface {
	Append(ctx context.Context, adj stock.Adjustment) error
	ListByKey(ctx context.Context, key stock.Key, limit int) ([]stock.Adjustment, error)
}
