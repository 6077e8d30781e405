package stock

import (
	"time"

	"stock-ledger/internal/pkg/errs"
)

// Record holds on-hand and reserved quantities for one Key.
// Every mutation keeps 0 <= reserved <= onHand.
type Record struct {
	key       Key
	onHand    int
	reserved  int
	removedAt *time.Time
	createdAt time.Time
	updatedAt time.Time
}

func NewRecord(key Key, onHand int, now time.Time) (*Record, error) {
	if onHand < 0 {
		return nil, errs.Wrapf(errs.ErrValidation, "initial on-hand must not be negative, got %d", onHand)
	}
	if onHand > MaxQuantity {
		return nil, errs.Wrapf(errs.ErrValidation, "initial on-hand exceeds %d", MaxQuantity)
	}
	return &Record{
		key:       key,
		onHand:    onHand,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructRecord(key Key, onHand, reserved int, removedAt *time.Time, createdAt, updatedAt time.Time) *Record {
	return &Record{
		key:       key,
		onHand:    onHand,
		reserved:  reserved,
		removedAt: removedAt,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Record) Key() Key              { return r.key }
func (r *Record) OnHand() int           { return r.onHand }
func (r *Record) Reserved() int         { return r.reserved }
func (r *Record) RemovedAt() *time.Time { return r.removedAt }
func (r *Record) CreatedAt() time.Time  { return r.createdAt }
func (r *Record) UpdatedAt() time.Time  { return r.updatedAt }

func (r *Record) Available() int {
	return r.onHand - r.reserved
}

func (r *Record) IsRemoved() bool {
	return r.removedAt != nil
}

// Hold moves quantity from available to reserved.
func (r *Record) Hold(quantity int, now time.Time) error {
	if quantity <= 0 {
		return errs.Wrapf(errs.ErrValidation, "quantity must be positive, got %d", quantity)
	}
	if r.Available() < quantity {
		return errs.Wrapf(errs.ErrInsufficientStock, "%s: available %d, requested %d", r.key, r.Available(), quantity)
	}
	r.reserved += quantity
	r.updatedAt = now
	return nil
}

// Release returns a held quantity to available without touching on-hand.
func (r *Record) Release(quantity int, now time.Time) error {
	if quantity <= 0 || quantity > r.reserved {
		return errs.Wrapf(errs.ErrInvalidState, "%s: cannot release %d of %d reserved", r.key, quantity, r.reserved)
	}
	r.reserved -= quantity
	r.updatedAt = now
	return nil
}

// Commit finalizes a held quantity as sold: both reserved and on-hand drop.
func (r *Record) Commit(quantity int, now time.Time) error {
	if quantity <= 0 || quantity > r.reserved {
		return errs.Wrapf(errs.ErrInvalidState, "%s: cannot commit %d of %d reserved", r.key, quantity, r.reserved)
	}
	r.reserved -= quantity
	r.onHand -= quantity
	r.updatedAt = now
	return nil
}

func (r *Record) AdjustOnHand(delta int, now time.Time) error {
	if delta == 0 {
		return errs.Wrap(errs.ErrValidation, "delta must not be zero")
	}
	next := r.onHand + delta
	if next > MaxQuantity {
		return errs.Wrapf(errs.ErrInvalidAdjustment, "%s: on-hand would exceed %d", r.key, MaxQuantity)
	}
	if next < 0 || next < r.reserved {
		return errs.Wrapf(errs.ErrInvalidAdjustment, "%s: on-hand %d%+d would fall below reserved %d", r.key, r.onHand, delta, r.reserved)
	}
	r.onHand = next
	r.updatedAt = now
	return nil
}

// Override sets absolute quantities for administrative corrections. Nil
// leaves the field unchanged. Returns the applied deltas.
func (r *Record) Override(onHand, reserved *int, now time.Time) (onHandDelta, reservedDelta int, err error) {
	if onHand == nil && reserved == nil {
		return 0, 0, errs.Wrap(errs.ErrValidation, "onHand or reserved is required")
	}
	nextOnHand, nextReserved := r.onHand, r.reserved
	if onHand != nil {
		nextOnHand = *onHand
	}
	if reserved != nil {
		nextReserved = *reserved
	}
	if nextOnHand < 0 || nextReserved < 0 || nextOnHand < nextReserved || nextOnHand > MaxQuantity {
		return 0, 0, errs.Wrapf(errs.ErrInvalidAdjustment, "%s: onHand %d, reserved %d violates onHand >= reserved >= 0", r.key, nextOnHand, nextReserved)
	}
	onHandDelta, reservedDelta = nextOnHand-r.onHand, nextReserved-r.reserved
	r.onHand, r.reserved = nextOnHand, nextReserved
	r.updatedAt = now
	return onHandDelta, reservedDelta, nil
}

// Remove soft-deletes the record. Outstanding holds block removal.
func (r *Record) Remove(now time.Time) error {
	if r.reserved > 0 {
		return errs.Wrapf(errs.ErrInvalidState, "%s: %d units still reserved", r.key, r.reserved)
	}
	r.removedAt = &now
	r.updatedAt = now
	return nil
}
