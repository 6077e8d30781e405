package queries

import (
	"context"
	"log/slog"

	"stock-ledger/internal/domain/stock"
	"stock-ledger/internal/domain/user"
	"stock-ledger/internal/infra"
	"stock-ledger/internal/pkg/config"
	"stock-ledger/internal/pkg/errs"
	"stock-ledger/internal/usecase/shared"
	"stock-ledger/internal/usecase/sweeper"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultAdjustmentLimit = 50
	MaxAdjustmentLimit     = 500
)

type InventoryQueries interface {
	GetStockStatus(ctx context.Context, productID, locationID string) (*StockView, error)
	GetReservation(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListReservationEvents(ctx context.Context, id uuid.UUID) ([]*ReservationEventView, error)
	ListAdjustments(ctx context.Context, actor shared.Actor, productID, locationID string, limit int) ([]*AdjustmentView, error)
}

// ProductSweeper expires the overdue holds of one key before it is read.
type ProductSweeper interface {
	SweepProduct(ctx context.Context, key stock.Key) (sweeper.Result, error)
}

type inventoryQueriesImpl struct {
	uow             shared.UnitOfWork
	sweeper         ProductSweeper
	lazyExpiry      bool
	defaultLocation string
	group           singleflight.Group
	logger          *slog.Logger
}

func NewInventoryQueries(uow shared.UnitOfWork, sweeper ProductSweeper, cfg config.Config, logger *slog.Logger) InventoryQueries {
	return &inventoryQueriesImpl{
		uow:             uow,
		sweeper:         sweeper,
		lazyExpiry:      cfg.Ledger.LazyExpiry,
		defaultLocation: cfg.Ledger.DefaultLocation,
		logger:          logger,
	}
}

// GetStockStatus coalesces concurrent reads of the same key into one
// storage round trip.
func (q *inventoryQueriesImpl) GetStockStatus(ctx context.Context, productID, locationID string) (*StockView, error) {
	key, err := q.key(productID, locationID)
	if err != nil {
		return nil, err
	}

	v, err, _ := q.group.Do(key.String(), func() (any, error) {
		// Detached so one caller's cancellation does not fail the others.
		ctx := context.WithoutCancel(ctx)
		if q.lazyExpiry {
			if _, err := q.sweeper.SweepProduct(ctx, key); err != nil {
				q.logger.Warn("lazy expiry failed", "key", key.String(), "error", err.Error())
			}
		}

		var view *StockView
		err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			rec, err := tx.Stocks().Get(ctx, key)
			if err != nil {
				return err
			}
			view = NewStockView(rec)
			return nil
		})
		return view, err
	})
	if err != nil {
		return nil, mapReadErr(err)
	}
	// Copy so coalesced callers never share a mutable view.
	view := *v.(*StockView)
	return &view, nil
}

func (q *inventoryQueriesImpl) GetReservation(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	var view *ReservationView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().Get(ctx, id)
		if err != nil {
			return err
		}
		view = NewReservationView(res)
		return nil
	})
	if err != nil {
		return nil, mapReadErr(err)
	}
	return view, nil
}

func (q *inventoryQueriesImpl) ListReservationEvents(ctx context.Context, id uuid.UUID) ([]*ReservationEventView, error) {
	var views []*ReservationEventView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reservations().Get(ctx, id); err != nil {
			return err
		}
		events, err := tx.Reservations().ListEvents(ctx, id)
		if err != nil {
			return err
		}
		views = make([]*ReservationEventView, 0, len(events))
		for _, ev := range events {
			views = append(views, newReservationEventView(ev))
		}
		return nil
	})
	if err != nil {
		return nil, mapReadErr(err)
	}
	return views, nil
}

func (q *inventoryQueriesImpl) ListAdjustments(ctx context.Context, actor shared.Actor, productID, locationID string, limit int) ([]*AdjustmentView, error) {
	if !actor.Role.AtLeast(user.RoleOperator) {
		return nil, errs.Wrap(errs.ErrForbidden, "adjustment history requires operator role")
	}
	key, err := q.key(productID, locationID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultAdjustmentLimit
	}
	if limit > MaxAdjustmentLimit {
		limit = MaxAdjustmentLimit
	}

	var views []*AdjustmentView
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Stocks().Get(ctx, key); err != nil {
			return err
		}
		adjustments, err := tx.Adjustments().ListByKey(ctx, key, limit)
		if err != nil {
			return err
		}
		views = make([]*AdjustmentView, 0, len(adjustments))
		for _, adj := range adjustments {
			views = append(views, newAdjustmentView(adj))
		}
		return nil
	})
	if err != nil {
		return nil, mapReadErr(err)
	}
	return views, nil
}

func (q *inventoryQueriesImpl) key(productID, locationID string) (stock.Key, error) {
	if locationID == "" {
		locationID = q.defaultLocation
	}
	return stock.NewKey(productID, locationID)
}

func mapReadErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Wrap(errs.ErrNotFound, err.Error())
	}
	if infra.IsKind(err, infra.KindDBFailure) {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return err
}
