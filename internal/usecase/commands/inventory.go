package commands

import (
	"context"
	"log/slog"
	"time"

	"stock-ledger/internal/domain/reservation"
	"stock-ledger/internal/domain/stock"
	"stock-ledger/internal/domain/user"
	"stock-ledger/internal/pkg/config"
	"stock-ledger/internal/pkg/errs"
	"stock-ledger/internal/usecase/queries"
	"stock-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// MaxBulkItems bounds a single BulkAdjust request.
const MaxBulkItems = 1000

type InventoryCommands interface {
	Reserve(ctx context.Context, actor shared.Actor, in ReserveInput) (*queries.ReservationView, error)
	ReserveBatch(ctx context.Context, actor shared.Actor, in ReserveBatchInput) ([]*queries.ReservationView, error)
	Confirm(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.ReservationView, error)
	Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.ReservationView, error)
	AdjustOnHand(ctx context.Context, actor shared.Actor, in AdjustInput) (*queries.StockView, error)
	BulkAdjust(ctx context.Context, actor shared.Actor, items []OverrideItem) ([]BulkAdjustResult, error)
	InitializeStock(ctx context.Context, actor shared.Actor, in InitializeInput) (*queries.StockView, error)
	RemoveStock(ctx context.Context, actor shared.Actor, productID, locationID string) error
}

// BulkAdjustResult is the per-item outcome of BulkAdjust. Exactly one of
// Stock or ErrorCode is set.
type BulkAdjustResult struct {
	Index      int
	ProductID  string
	LocationID string
	OK         bool
	Stock      *queries.StockView
	ErrorCode  string
	Error      string
}

type inventoryCommandsImpl struct {
	ledger  Ledger
	emitter *shared.ChangeEmitter
	cfg     config.LedgerConfig
	logger  *slog.Logger
}

func NewInventoryCommands(ledger Ledger, emitter *shared.ChangeEmitter, cfg config.Config, logger *slog.Logger) InventoryCommands {
	return &inventoryCommandsImpl{
		ledger:  ledger,
		emitter: emitter,
		cfg:     cfg.Ledger,
		logger:  logger,
	}
}

func (c *inventoryCommandsImpl) Reserve(ctx context.Context, actor shared.Actor, in ReserveInput) (*queries.ReservationView, error) {
	if err := authorize(actor, user.RoleViewer); err != nil {
		return nil, err
	}
	key, err := c.key(in.ProductID, in.LocationID)
	if err != nil {
		return nil, err
	}
	holder, err := reservation.NewHolderRef(in.HolderRef)
	if err != nil {
		return nil, err
	}

	out, err := c.ledger.Reserve(ctx, key, in.Quantity, holder, c.holdTTL(in.TTL), actor.String())
	if err != nil {
		return nil, err
	}
	c.emitter.Emit(ctx, out.Stock, shared.CauseReserved)
	return queries.NewReservationView(out.Reservation), nil
}

// ReserveBatch holds every item or none. Items are reserved one by one;
// on the first failure the already reserved siblings are cancelled.
func (c *inventoryCommandsImpl) ReserveBatch(ctx context.Context, actor shared.Actor, in ReserveBatchInput) ([]*queries.ReservationView, error) {
	if err := authorize(actor, user.RoleViewer); err != nil {
		return nil, err
	}
	if len(in.Items) == 0 {
		return nil, errs.Wrap(errs.ErrValidation, "at least one item is required")
	}
	if len(in.Items) > c.cfg.MaxBatchItems {
		return nil, errs.Wrapf(errs.ErrValidation, "batch exceeds %d items", c.cfg.MaxBatchItems)
	}
	holder, err := reservation.NewHolderRef(in.HolderRef)
	if err != nil {
		return nil, err
	}

	keys := make([]stock.Key, len(in.Items))
	for i, item := range in.Items {
		if keys[i], err = c.key(item.ProductID, item.LocationID); err != nil {
			return nil, &BatchItemError{Index: i, Err: err}
		}
		if item.Quantity <= 0 {
			return nil, &BatchItemError{Index: i, Err: errs.Wrapf(errs.ErrValidation, "quantity must be positive, got %d", item.Quantity)}
		}
	}

	ttl := c.holdTTL(in.TTL)
	views := make([]*queries.ReservationView, 0, len(in.Items))
	held := make([]uuid.UUID, 0, len(in.Items))
	for i, item := range in.Items {
		out, err := c.ledger.Reserve(ctx, keys[i], item.Quantity, holder, ttl, actor.String())
		if err != nil {
			c.compensate(ctx, held, actor)
			return nil, &BatchItemError{Index: i, Err: err}
		}
		c.emitter.Emit(ctx, out.Stock, shared.CauseReserved)
		held = append(held, out.Reservation.ID())
		views = append(views, queries.NewReservationView(out.Reservation))
	}
	return views, nil
}

// compensate cancels batch siblings. A sibling that cannot be cancelled
// stays HELD and is reclaimed by expiry.
func (c *inventoryCommandsImpl) compensate(ctx context.Context, ids []uuid.UUID, actor shared.Actor) {
	// The caller's context may already be cancelled; compensation must still run.
	ctx = context.WithoutCancel(ctx)
	for i := len(ids) - 1; i >= 0; i-- {
		out, err := c.ledger.Cancel(ctx, ids[i], actor.String())
		if err != nil {
			c.logger.Error("failed to compensate batch reservation",
				"reservation_id", ids[i].String(),
				"error", err.Error())
			continue
		}
		c.emitter.Emit(ctx, out.Stock, shared.CauseCancelled)
	}
}

func (c *inventoryCommandsImpl) Confirm(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.ReservationView, error) {
	if err := authorize(actor, user.RoleOperator); err != nil {
		return nil, err
	}
	out, err := c.ledger.Confirm(ctx, id, actor.String())
	if err != nil {
		return nil, err
	}
	if out.Changed {
		c.emitter.Emit(ctx, out.Stock, shared.CauseConfirmed)
	}
	return queries.NewReservationView(out.Reservation), nil
}

func (c *inventoryCommandsImpl) Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.ReservationView, error) {
	if err := authorize(actor, user.RoleOperator); err != nil {
		return nil, err
	}
	out, err := c.ledger.Cancel(ctx, id, actor.String())
	if err != nil {
		return nil, err
	}
	c.emitter.Emit(ctx, out.Stock, shared.CauseCancelled)
	return queries.NewReservationView(out.Reservation), nil
}

func (c *inventoryCommandsImpl) AdjustOnHand(ctx context.Context, actor shared.Actor, in AdjustInput) (*queries.StockView, error) {
	if err := authorize(actor, user.RoleOperator); err != nil {
		return nil, err
	}
	key, err := c.key(in.ProductID, in.LocationID)
	if err != nil {
		return nil, err
	}
	reason, err := stock.NewReason(in.Reason)
	if err != nil {
		return nil, err
	}

	out, err := c.ledger.AdjustOnHand(ctx, key, in.Delta, reason, actor.String())
	if err != nil {
		return nil, err
	}
	c.emitter.Emit(ctx, out.Stock, shared.CauseAdjusted)
	return queries.NewStockView(out.Stock), nil
}

// BulkAdjust applies administrative overrides. Items for distinct keys run
// concurrently; items for the same key run in request order. An item
// failure never fails the batch.
func (c *inventoryCommandsImpl) BulkAdjust(ctx context.Context, actor shared.Actor, items []OverrideItem) ([]BulkAdjustResult, error) {
	if err := authorize(actor, user.RoleOperator); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.Wrap(errs.ErrValidation, "at least one item is required")
	}
	if len(items) > MaxBulkItems {
		return nil, errs.Wrapf(errs.ErrValidation, "bulk adjust exceeds %d items", MaxBulkItems)
	}

	results := make([]BulkAdjustResult, len(items))
	groups := make(map[stock.Key][]int)
	var order []stock.Key
	for i, item := range items {
		results[i] = BulkAdjustResult{Index: i, ProductID: item.ProductID, LocationID: item.LocationID}
		key, err := c.key(item.ProductID, item.LocationID)
		if err != nil {
			results[i].fail(err)
			continue
		}
		results[i].LocationID = key.LocationID
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], i)
	}

	var g errgroup.Group
	g.SetLimit(max(c.cfg.BulkConcurrency, 1))
	for _, key := range order {
		indexes := groups[key]
		g.Go(func() error {
			for _, i := range indexes {
				out, err := c.ledger.Override(ctx, key, items[i].OnHand, items[i].Reserved, actor.String())
				if err != nil {
					results[i].fail(err)
					continue
				}
				results[i].OK = true
				results[i].Stock = queries.NewStockView(out.Stock)
				if out.Changed {
					c.emitter.Emit(ctx, out.Stock, shared.CauseOverridden)
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	return results, nil
}

func (r *BulkAdjustResult) fail(err error) {
	r.OK = false
	r.ErrorCode = errs.Code(err)
	r.Error = err.Error()
}

func (c *inventoryCommandsImpl) InitializeStock(ctx context.Context, actor shared.Actor, in InitializeInput) (*queries.StockView, error) {
	if err := authorize(actor, user.RoleOperator); err != nil {
		return nil, err
	}
	key, err := c.key(in.ProductID, in.LocationID)
	if err != nil {
		return nil, err
	}

	out, err := c.ledger.Initialize(ctx, key, in.OnHand, actor.String())
	if err != nil {
		return nil, err
	}
	c.emitter.Emit(ctx, out.Stock, shared.CauseInitialized)
	return queries.NewStockView(out.Stock), nil
}

func (c *inventoryCommandsImpl) RemoveStock(ctx context.Context, actor shared.Actor, productID, locationID string) error {
	if err := authorize(actor, user.RoleAdmin); err != nil {
		return err
	}
	key, err := c.key(productID, locationID)
	if err != nil {
		return err
	}

	out, err := c.ledger.Remove(ctx, key, actor.String())
	if err != nil {
		return err
	}
	c.emitter.Emit(ctx, out.Stock, shared.CauseRemoved)
	return nil
}

func (c *inventoryCommandsImpl) key(productID, locationID string) (stock.Key, error) {
	if locationID == "" {
		locationID = c.cfg.DefaultLocation
	}
	return stock.NewKey(productID, locationID)
}

// holdTTL applies the configured default and caps at the maximum.
func (c *inventoryCommandsImpl) holdTTL(requested time.Duration) time.Duration {
	if requested <= 0 {
		return c.cfg.DefaultHoldTTL
	}
	if requested > c.cfg.MaxHoldTTL {
		return c.cfg.MaxHoldTTL
	}
	return requested
}

func authorize(actor shared.Actor, min user.Role) error {
	if !actor.Role.AtLeast(min) {
		return errs.Wrapf(errs.ErrForbidden, "role %q cannot perform this operation, %s required", actor.Role, min)
	}
	return nil
}
