package ledger

import (
	"context"

	"stock-ledger/internal/domain/stock"
	"stock-ledger/internal/infra"
	"stock-ledger/internal/pkg/errs"
	"stock-ledger/internal/usecase/shared"
)

// AdjustOnHand applies a signed on-hand change. It never clamps: a change
// that would leave on-hand below reserved fails with InvalidAdjustment.
func (l *Ledger) AdjustOnHand(ctx context.Context, key stock.Key, delta int, reason stock.Reason, actor string) (Outcome, error) {
	if !reason.IsValid() {
		return Outcome{}, errs.Wrapf(errs.ErrValidation, "unknown adjustment reason %q", reason)
	}

	var out Outcome
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rec, err := tx.Stocks().GetForUpdate(ctx, key)
		if err != nil {
			return mapRepoErr(err)
		}

		now := l.clock.Now()
		if err := rec.AdjustOnHand(delta, now); err != nil {
			return err
		}
		if err := tx.Stocks().Save(ctx, rec); err != nil {
			return mapRepoErr(err)
		}
		if err := tx.Adjustments().Append(ctx, stock.Adjustment{
			Key:        key,
			Delta:      delta,
			Reason:     reason,
			Actor:      actor,
			OccurredAt: now,
		}); err != nil {
			return mapRepoErr(err)
		}

		out = Outcome{Stock: rec, Changed: true}
		return nil
	})
	if err != nil {
		return Outcome{}, err
	}
	return out, nil
}

// Override sets absolute quantities for one key. Setting the values a record
// already has is a no-op and writes no audit entry. A reserved override may
// only reconcile the record to the quantity its held reservations claim.
func (l *Ledger) Override(ctx context.Context, key stock.Key, onHand, reserved *int, actor string) (Outcome, error) {
	var out Outcome
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rec, err := tx.Stocks().GetForUpdate(ctx, key)
		if err != nil {
			return mapRepoErr(err)
		}
		if reserved != nil {
			held, err := tx.Reservations().SumHeld(ctx, key)
			if err != nil {
				return mapRepoErr(err)
			}
			if *reserved != held {
				return errs.Wrapf(errs.ErrInvalidAdjustment, "%s: reserved %d does not match %d held", key, *reserved, held)
			}
		}

		now := l.clock.Now()
		onHandDelta, reservedDelta, err := rec.Override(onHand, reserved, now)
		if err != nil {
			return err
		}
		out = Outcome{Stock: rec}
		if onHandDelta == 0 && reservedDelta == 0 {
			return nil
		}

		if err := tx.Stocks().Save(ctx, rec); err != nil {
			return mapRepoErr(err)
		}
		if err := tx.Adjustments().Append(ctx, stock.Adjustment{
			Key:           key,
			Delta:         onHandDelta,
			ReservedDelta: reservedDelta,
			Reason:        stock.ReasonCorrection,
			Actor:         actor,
			OccurredAt:    now,
		}); err != nil {
			return mapRepoErr(err)
		}
		out.Changed = true
		return nil
	})
	if err != nil {
		return Outcome{}, err
	}

	if out.Changed {
		l.logger.Info("stock overridden",
			"key", key.String(),
			"on_hand", out.Stock.OnHand(),
			"reserved", out.Stock.Reserved(),
			"actor", actor)
	}
	return out, nil
}

// Initialize creates the stock record for key. A positive starting quantity
// is recorded as a restock.
func (l *Ledger) Initialize(ctx context.Context, key stock.Key, onHand int, actor string) (Outcome, error) {
	var out Outcome
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := l.clock.Now()
		rec, err := stock.NewRecord(key, onHand, now)
		if err != nil {
			return err
		}
		if err := tx.Stocks().Create(ctx, rec); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Wrapf(errs.ErrInvalidState, "stock record %s already exists", key)
			}
			return mapRepoErr(err)
		}
		if onHand > 0 {
			if err := tx.Adjustments().Append(ctx, stock.Adjustment{
				Key:        key,
				Delta:      onHand,
				Reason:     stock.ReasonRestock,
				Actor:      actor,
				OccurredAt: now,
			}); err != nil {
				return mapRepoErr(err)
			}
		}
		out = Outcome{Stock: rec, Changed: true}
		return nil
	})
	if err != nil {
		return Outcome{}, err
	}
	return out, nil
}

// Remove soft-deletes the stock record. Outstanding holds block removal;
// afterwards every operation on key reports NotFound.
func (l *Ledger) Remove(ctx context.Context, key stock.Key, actor string) (Outcome, error) {
	var out Outcome
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rec, err := tx.Stocks().GetForUpdate(ctx, key)
		if err != nil {
			return mapRepoErr(err)
		}
		held, err := tx.Reservations().SumHeld(ctx, key)
		if err != nil {
			return mapRepoErr(err)
		}
		if held > 0 {
			return errs.Wrapf(errs.ErrInvalidState, "%s: %d units still held", key, held)
		}
		if err := rec.Remove(l.clock.Now()); err != nil {
			return err
		}
		if err := tx.Stocks().Save(ctx, rec); err != nil {
			return mapRepoErr(err)
		}
		out = Outcome{Stock: rec, Changed: true}
		return nil
	})
	if err != nil {
		return Outcome{}, err
	}

	l.logger.Info("stock removed", "key", key.String(), "actor", actor)
	return out, nil
}
