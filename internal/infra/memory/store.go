package memory

import (
	"context"
	"sync"
	"time"

	"stock-ledger/internal/domain/reservation"
	"stock-ledger/internal/domain/stock"
	"stock-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type stockRow struct {
	onHand    int
	reserved  int
	removedAt *time.Time
	createdAt time.Time
	updatedAt time.Time
}

type reservationRow struct {
	key       stock.Key
	quantity  int
	state     reservation.State
	holderRef reservation.HolderRef
	createdAt time.Time
	expiresAt *time.Time
	updatedAt time.Time
}

// Store is the in-process ledger backend. Committed state lives behind mu;
// per-key and per-reservation locks provide the row-lock semantics.
type Store struct {
	mu           sync.RWMutex
	stocks       map[stock.Key]stockRow
	reservations map[uuid.UUID]reservationRow
	events       map[uuid.UUID][]reservation.Event
	adjustments  map[stock.Key][]stock.Adjustment
	nextEventID  int64
	nextAdjID    int64

	stockLocks       *keyedLocker[stock.Key]
	reservationLocks *keyedLocker[uuid.UUID]
}

func NewStore() *Store {
	return &Store{
		stocks:           make(map[stock.Key]stockRow),
		reservations:     make(map[uuid.UUID]reservationRow),
		events:           make(map[uuid.UUID][]reservation.Event),
		adjustments:      make(map[stock.Key][]stock.Adjustment),
		stockLocks:       newKeyedLocker[stock.Key](),
		reservationLocks: newKeyedLocker[uuid.UUID](),
	}
}

type UoW struct {
	store *Store
}

func NewUoW(store *Store) shared.UnitOfWork {
	return &UoW{store: store}
}

// Within stages writes and applies them atomically when fn succeeds.
func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := newMemTx(u.store, false)
	defer tx.release()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.commit()
}

func (u *UoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := newMemTx(u.store, true)
	defer tx.release()

	return fn(ctx, tx)
}
