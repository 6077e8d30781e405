package memory

import (
	"context"
	"slices"
	"time"

	"stock-ledger/internal/domain/reservation"
	"stock-ledger/internal/domain/stock"
	"stock-ledger/internal/infra"
	"stock-ledger/internal/pkg/errs"
	"stock-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

const maxListLimit = 1000

var errReadOnly = errs.New("write attempted in read-only transaction")

// memTx buffers writes until commit. Reads see committed state overlaid
// with the transaction's own staged writes.
type memTx struct {
	store    *Store
	readOnly bool

	stocks          map[stock.Key]stockRow
	newStocks       map[stock.Key]bool
	reservations    map[uuid.UUID]reservationRow
	newReservations map[uuid.UUID]bool
	events          []reservation.Event
	adjustments     []stock.Adjustment

	heldStocks       map[stock.Key]bool
	heldReservations map[uuid.UUID]bool
	unlocks          []func()
}

func newMemTx(store *Store, readOnly bool) *memTx {
	return &memTx{
		store:            store,
		readOnly:         readOnly,
		stocks:           make(map[stock.Key]stockRow),
		newStocks:        make(map[stock.Key]bool),
		reservations:     make(map[uuid.UUID]reservationRow),
		newReservations:  make(map[uuid.UUID]bool),
		heldStocks:       make(map[stock.Key]bool),
		heldReservations: make(map[uuid.UUID]bool),
	}
}

func (t *memTx) Stocks() shared.StockRepository             { return stockRepo{t} }
func (t *memTx) Reservations() shared.ReservationRepository { return reservationRepo{t} }
func (t *memTx) Adjustments() shared.AdjustmentRepository   { return adjustmentRepo{t} }

func (t *memTx) release() {
	for i := len(t.unlocks) - 1; i >= 0; i-- {
		t.unlocks[i]()
	}
	t.unlocks = nil
}

func (t *memTx) commit() error {
	if t.readOnly {
		return nil
	}
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range t.newStocks {
		if _, exists := s.stocks[key]; exists {
			return infra.WrapRepoErr("stock record "+key.String()+" already exists", nil, infra.KindDuplicateKey)
		}
	}
	for id := range t.newReservations {
		if _, exists := s.reservations[id]; exists {
			return infra.WrapRepoErr("reservation "+id.String()+" already exists", nil, infra.KindDuplicateKey)
		}
		key := t.reservations[id].key
		_, committed := s.stocks[key]
		_, staged := t.stocks[key]
		if !committed && !staged {
			return infra.WrapRepoErr("reservation references unknown stock record "+key.String(), nil, infra.KindForeignKeyViolated)
		}
	}

	for key, row := range t.stocks {
		s.stocks[key] = row
	}
	for id, row := range t.reservations {
		s.reservations[id] = row
	}
	for _, ev := range t.events {
		s.nextEventID++
		ev.ID = s.nextEventID
		s.events[ev.ReservationID] = append(s.events[ev.ReservationID], ev)
	}
	for _, adj := range t.adjustments {
		s.nextAdjID++
		adj.ID = s.nextAdjID
		s.adjustments[adj.Key] = append(s.adjustments[adj.Key], adj)
	}
	return nil
}

func (t *memTx) lookupStock(key stock.Key) (stockRow, bool) {
	if row, ok := t.stocks[key]; ok {
		return row, true
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	row, ok := t.store.stocks[key]
	return row, ok
}

func (t *memTx) lookupReservation(id uuid.UUID) (reservationRow, bool) {
	if row, ok := t.reservations[id]; ok {
		return row, true
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	row, ok := t.store.reservations[id]
	return row, ok
}

// reservationView merges committed and staged reservations.
func (t *memTx) reservationView() map[uuid.UUID]reservationRow {
	t.store.mu.RLock()
	view := make(map[uuid.UUID]reservationRow, len(t.store.reservations)+len(t.reservations))
	for id, row := range t.store.reservations {
		view[id] = row
	}
	t.store.mu.RUnlock()
	for id, row := range t.reservations {
		view[id] = row
	}
	return view
}

type stockRepo struct{ tx *memTx }

func (r stockRepo) Get(_ context.Context, key stock.Key) (*stock.Record, error) {
	row, ok := r.tx.lookupStock(key)
	if !ok {
		return nil, infra.NotFound("stock record " + key.String())
	}
	if row.removedAt != nil {
		return nil, infra.NotFound("stock record " + key.String() + " was removed")
	}
	return stock.ReconstructRecord(key, row.onHand, row.reserved, row.removedAt, row.createdAt, row.updatedAt), nil
}

func (r stockRepo) GetForUpdate(ctx context.Context, key stock.Key) (*stock.Record, error) {
	if !r.tx.heldStocks[key] {
		unlock, err := r.tx.store.stockLocks.Lock(ctx, key)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to lock stock record "+key.String(), err, infra.KindDBFailure)
		}
		r.tx.unlocks = append(r.tx.unlocks, unlock)
		r.tx.heldStocks[key] = true
	}
	return r.Get(ctx, key)
}

func (r stockRepo) Create(_ context.Context, rec *stock.Record) error {
	if r.tx.readOnly {
		return errReadOnly
	}
	if _, exists := r.tx.lookupStock(rec.Key()); exists {
		return infra.WrapRepoErr("stock record "+rec.Key().String()+" already exists", nil, infra.KindDuplicateKey)
	}
	r.tx.stocks[rec.Key()] = toStockRow(rec)
	r.tx.newStocks[rec.Key()] = true
	return nil
}

func (r stockRepo) Save(_ context.Context, rec *stock.Record) error {
	if r.tx.readOnly {
		return errReadOnly
	}
	if _, exists := r.tx.lookupStock(rec.Key()); !exists {
		return infra.NotFound("stock record " + rec.Key().String())
	}
	r.tx.stocks[rec.Key()] = toStockRow(rec)
	return nil
}

type reservationRepo struct{ tx *memTx }

func (r reservationRepo) Get(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, ok := r.tx.lookupReservation(id)
	if !ok {
		return nil, infra.NotFound("reservation " + id.String())
	}
	return toReservation(id, row), nil
}

func (r reservationRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	if !r.tx.heldReservations[id] {
		unlock, err := r.tx.store.reservationLocks.Lock(ctx, id)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to lock reservation "+id.String(), err, infra.KindDBFailure)
		}
		r.tx.unlocks = append(r.tx.unlocks, unlock)
		r.tx.heldReservations[id] = true
	}
	return r.Get(ctx, id)
}

func (r reservationRepo) Create(_ context.Context, res *reservation.Reservation) error {
	if r.tx.readOnly {
		return errReadOnly
	}
	if _, exists := r.tx.lookupReservation(res.ID()); exists {
		return infra.WrapRepoErr("reservation "+res.ID().String()+" already exists", nil, infra.KindDuplicateKey)
	}
	if _, ok := r.tx.lookupStock(res.Key()); !ok {
		return infra.WrapRepoErr("reservation references unknown stock record "+res.Key().String(), nil, infra.KindForeignKeyViolated)
	}
	r.tx.reservations[res.ID()] = toReservationRow(res)
	r.tx.newReservations[res.ID()] = true
	return nil
}

func (r reservationRepo) Save(_ context.Context, res *reservation.Reservation) error {
	if r.tx.readOnly {
		return errReadOnly
	}
	if _, exists := r.tx.lookupReservation(res.ID()); !exists {
		return infra.NotFound("reservation " + res.ID().String())
	}
	r.tx.reservations[res.ID()] = toReservationRow(res)
	return nil
}

func (r reservationRepo) ListDueHeld(_ context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	return r.dueHeld(now, limit, func(reservationRow) bool { return true }), nil
}

func (r reservationRepo) ListDueHeldByKey(_ context.Context, key stock.Key, now time.Time) ([]uuid.UUID, error) {
	return r.dueHeld(now, maxListLimit, func(row reservationRow) bool { return row.key == key }), nil
}

func (r reservationRepo) dueHeld(now time.Time, limit int, match func(reservationRow) bool) []uuid.UUID {
	type due struct {
		id        uuid.UUID
		expiresAt time.Time
	}
	var found []due
	for id, row := range r.tx.reservationView() {
		if row.state != reservation.StateHeld || row.expiresAt == nil || now.Before(*row.expiresAt) || !match(row) {
			continue
		}
		found = append(found, due{id: id, expiresAt: *row.expiresAt})
	}
	slices.SortFunc(found, func(a, b due) int { return a.expiresAt.Compare(b.expiresAt) })

	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}
	if len(found) > limit {
		found = found[:limit]
	}
	ids := make([]uuid.UUID, 0, len(found))
	for _, d := range found {
		ids = append(ids, d.id)
	}
	return ids
}

func (r reservationRepo) SumHeld(_ context.Context, key stock.Key) (int, error) {
	total := 0
	for _, row := range r.tx.reservationView() {
		if row.key == key && row.state == reservation.StateHeld {
			total += row.quantity
		}
	}
	return total, nil
}

func (r reservationRepo) AppendEvent(_ context.Context, ev reservation.Event) error {
	if r.tx.readOnly {
		return errReadOnly
	}
	r.tx.events = append(r.tx.events, ev)
	return nil
}

func (r reservationRepo) ListEvents(_ context.Context, id uuid.UUID) ([]reservation.Event, error) {
	r.tx.store.mu.RLock()
	events := slices.Clone(r.tx.store.events[id])
	r.tx.store.mu.RUnlock()
	for _, ev := range r.tx.events {
		if ev.ReservationID == id {
			events = append(events, ev)
		}
	}
	return events, nil
}

type adjustmentRepo struct{ tx *memTx }

func (r adjustmentRepo) Append(_ context.Context, adj stock.Adjustment) error {
	if r.tx.readOnly {
		return errReadOnly
	}
	r.tx.adjustments = append(r.tx.adjustments, adj)
	return nil
}

func (r adjustmentRepo) ListByKey(_ context.Context, key stock.Key, limit int) ([]stock.Adjustment, error) {
	r.tx.store.mu.RLock()
	all := slices.Clone(r.tx.store.adjustments[key])
	r.tx.store.mu.RUnlock()
	for _, adj := range r.tx.adjustments {
		if adj.Key == key {
			all = append(all, adj)
		}
	}
	slices.Reverse(all)

	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func toStockRow(rec *stock.Record) stockRow {
	return stockRow{
		onHand:    rec.OnHand(),
		reserved:  rec.Reserved(),
		removedAt: rec.RemovedAt(),
		createdAt: rec.CreatedAt(),
		updatedAt: rec.UpdatedAt(),
	}
}

func toReservationRow(res *reservation.Reservation) reservationRow {
	return reservationRow{
		key:       res.Key(),
		quantity:  res.Quantity(),
		state:     res.State(),
		holderRef: res.HolderRef(),
		createdAt: res.CreatedAt(),
		expiresAt: res.ExpiresAt(),
		updatedAt: res.UpdatedAt(),
	}
}

func toReservation(id uuid.UUID, row reservationRow) *reservation.Reservation {
	return reservation.ReconstructReservation(id, row.key, row.quantity, row.state, row.holderRef, row.createdAt, row.expiresAt, row.updatedAt)
}
