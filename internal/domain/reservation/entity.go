package reservation

import (
	"time"

	"stock-ledger/internal/domain/stock"
	"stock-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

// Reservation is a temporary claim on stock. HELD is the only state with
// outgoing transitions; CONFIRMED, CANCELLED and EXPIRED are final.
type Reservation struct {
	id        uuid.UUID
	key       stock.Key
	quantity  int
	state     State
	holderRef HolderRef
	createdAt time.Time
	expiresAt *time.Time
	updatedAt time.Time
}

func NewReservation(key stock.Key, quantity int, holder HolderRef, now time.Time, ttl time.Duration) (*Reservation, error) {
	if quantity <= 0 {
		return nil, errs.Wrapf(errs.ErrValidation, "quantity must be positive, got %d", quantity)
	}
	if quantity > stock.MaxQuantity {
		return nil, errs.Wrapf(errs.ErrValidation, "quantity exceeds %d", stock.MaxQuantity)
	}
	if ttl <= 0 {
		return nil, errs.Wrapf(errs.ErrValidation, "ttl must be positive, got %s", ttl)
	}
	expiresAt := now.Add(ttl)
	return &Reservation{
		id:        uuid.New(),
		key:       key,
		quantity:  quantity,
		state:     StateHeld,
		holderRef: holder,
		createdAt: now,
		expiresAt: &expiresAt,
		updatedAt: now,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	key stock.Key,
	quantity int,
	state State,
	holder HolderRef,
	createdAt time.Time,
	expiresAt *time.Time,
	updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		key:       key,
		quantity:  quantity,
		state:     state,
		holderRef: holder,
		createdAt: createdAt,
		expiresAt: expiresAt,
		updatedAt: updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) Key() stock.Key        { return r.key }
func (r *Reservation) Quantity() int         { return r.quantity }
func (r *Reservation) State() State          { return r.state }
func (r *Reservation) HolderRef() HolderRef  { return r.holderRef }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) ExpiresAt() *time.Time { return r.expiresAt }
func (r *Reservation) UpdatedAt() time.Time  { return r.updatedAt }
func (r *Reservation) IsHeld() bool          { return r.state == StateHeld }
func (r *Reservation) IsTerminal() bool      { return r.state.IsTerminal() }

// IsDue reports whether a held reservation has passed its expiry.
func (r *Reservation) IsDue(now time.Time) bool {
	return r.state == StateHeld && r.expiresAt != nil && !now.Before(*r.expiresAt)
}

// Confirm finalizes the hold. Confirming an already confirmed reservation
// is a no-op and reports changed=false so retries never double-commit.
func (r *Reservation) Confirm(now time.Time) (changed bool, err error) {
	if r.state == StateConfirmed {
		return false, nil
	}
	if err := r.transition(StateConfirmed, now); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Reservation) Cancel(now time.Time) error {
	return r.transition(StateCancelled, now)
}

func (r *Reservation) Expire(now time.Time) error {
	if r.state == StateHeld && !r.IsDue(now) {
		return errs.Wrapf(errs.ErrInvalidState, "reservation %s is not due until %s", r.id, r.expiresAt.Format(time.RFC3339))
	}
	return r.transition(StateExpired, now)
}

// Event describes the transition that produced the current state.
func (r *Reservation) Event(actor string, at time.Time) Event {
	return Event{
		ReservationID: r.id,
		Type:          eventFor(r.state),
		Quantity:      r.quantity,
		Actor:         actor,
		OccurredAt:    at,
	}
}

func (r *Reservation) transition(to State, now time.Time) error {
	if r.state != StateHeld {
		return errs.Wrapf(errs.ErrInvalidState, "reservation %s is %s, cannot become %s", r.id, r.state, to)
	}
	r.state = to
	r.expiresAt = nil
	r.updatedAt = now
	return nil
}
