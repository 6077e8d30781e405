package ledger

import (
	"context"
	"log/slog"
	"time"

	"stock-ledger/internal/domain/reservation"
	"stock-ledger/internal/domain/stock"
	"stock-ledger/internal/pkg/clock"
	"stock-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

// Outcome is the committed result of one ledger operation. Changed is false
// when the operation was an idempotent no-op.
type Outcome struct {
	Stock       *stock.Record
	Reservation *reservation.Reservation
	Changed     bool
}

// Ledger applies reservation and adjustment operations. Each call runs in
// its own unit of work and touches one stock record and at most one
// reservation. The stock row is always locked before the reservation row.
type Ledger struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewLedger(uow shared.UnitOfWork, clock clock.Clock, logger *slog.Logger) *Ledger {
	return &Ledger{
		uow:    uow,
		clock:  clock,
		logger: logger,
	}
}

func (l *Ledger) Reserve(ctx context.Context, key stock.Key, quantity int, holder reservation.HolderRef, ttl time.Duration, actor string) (Outcome, error) {
	var out Outcome
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rec, err := tx.Stocks().GetForUpdate(ctx, key)
		if err != nil {
			return mapRepoErr(err)
		}

		now := l.clock.Now()
		res, err := reservation.NewReservation(key, quantity, holder, now, ttl)
		if err != nil {
			return err
		}
		if err := rec.Hold(quantity, now); err != nil {
			return err
		}

		if err := tx.Stocks().Save(ctx, rec); err != nil {
			return mapRepoErr(err)
		}
		if err := tx.Reservations().Create(ctx, res); err != nil {
			return mapRepoErr(err)
		}
		if err := tx.Reservations().AppendEvent(ctx, res.Event(actor, now)); err != nil {
			return mapRepoErr(err)
		}

		out = Outcome{Stock: rec, Reservation: res, Changed: true}
		return nil
	})
	if err != nil {
		return Outcome{}, err
	}

	l.logger.Debug("reservation held",
		"reservation_id", out.Reservation.ID().String(),
		"key", key.String(),
		"quantity", quantity,
		"expires_at", out.Reservation.ExpiresAt())
	return out, nil
}

// Confirm commits a held reservation as sold. Confirming an already
// confirmed reservation returns it unchanged.
func (l *Ledger) Confirm(ctx context.Context, id uuid.UUID, actor string) (Outcome, error) {
	return l.transition(ctx, id, actor, func(ctx context.Context, tx shared.Tx, rec *stock.Record, res *reservation.Reservation, now time.Time) (bool, error) {
		changed, err := res.Confirm(now)
		if err != nil || !changed {
			return changed, err
		}
		if err := rec.Commit(res.Quantity(), now); err != nil {
			return false, err
		}
		resID := res.ID()
		return true, mapRepoErr(tx.Adjustments().Append(ctx, stock.Adjustment{
			Key:           rec.Key(),
			Delta:         -res.Quantity(),
			ReservedDelta: -res.Quantity(),
			Reason:        stock.ReasonSale,
			Actor:         actor,
			ReservationID: &resID,
			OccurredAt:    now,
		}))
	})
}

func (l *Ledger) Cancel(ctx context.Context, id uuid.UUID, actor string) (Outcome, error) {
	return l.transition(ctx, id, actor, func(_ context.Context, _ shared.Tx, rec *stock.Record, res *reservation.Reservation, now time.Time) (bool, error) {
		if err := res.Cancel(now); err != nil {
			return false, err
		}
		return true, rec.Release(res.Quantity(), now)
	})
}

// Expire reclaims a held reservation whose expiry has passed. It fails with
// InvalidState when the reservation already left HELD or is not yet due.
func (l *Ledger) Expire(ctx context.Context, id uuid.UUID) (Outcome, error) {
	return l.transition(ctx, id, shared.SystemActor, func(_ context.Context, _ shared.Tx, rec *stock.Record, res *reservation.Reservation, now time.Time) (bool, error) {
		if err := res.Expire(now); err != nil {
			return false, err
		}
		return true, rec.Release(res.Quantity(), now)
	})
}

type applyFunc func(ctx context.Context, tx shared.Tx, rec *stock.Record, res *reservation.Reservation, now time.Time) (changed bool, err error)

func (l *Ledger) transition(ctx context.Context, id uuid.UUID, actor string, apply applyFunc) (Outcome, error) {
	var out Outcome
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Unlocked read only to learn the key; state is re-read under lock.
		probe, err := tx.Reservations().Get(ctx, id)
		if err != nil {
			return mapRepoErr(err)
		}
		// Terminal reservations never reach the stock record: apply either
		// reports an idempotent no-op or fails before touching it.
		if probe.IsTerminal() {
			changed, err := apply(ctx, tx, nil, probe, l.clock.Now())
			if err != nil {
				return err
			}
			out = Outcome{Reservation: probe, Changed: changed}
			return nil
		}

		rec, err := tx.Stocks().GetForUpdate(ctx, probe.Key())
		if err != nil {
			return mapRepoErr(err)
		}
		res, err := tx.Reservations().GetForUpdate(ctx, id)
		if err != nil {
			return mapRepoErr(err)
		}

		now := l.clock.Now()
		changed, err := apply(ctx, tx, rec, res, now)
		if err != nil {
			return err
		}
		out = Outcome{Stock: rec, Reservation: res, Changed: changed}
		if !changed {
			return nil
		}

		if err := tx.Stocks().Save(ctx, rec); err != nil {
			return mapRepoErr(err)
		}
		if err := tx.Reservations().Save(ctx, res); err != nil {
			return mapRepoErr(err)
		}
		return mapRepoErr(tx.Reservations().AppendEvent(ctx, res.Event(actor, now)))
	})
	if err != nil {
		return Outcome{}, err
	}

	if out.Changed {
		l.logger.Debug("reservation transitioned",
			"reservation_id", id.String(),
			"state", out.Reservation.State().String(),
			"actor", actor)
	}
	return out, nil
}
