//go:build unit

package ledger_test

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"stock-ledger/internal/domain/reservation"
	"stock-ledger/internal/domain/stock"
	"stock-ledger/internal/infra/memory"
	"stock-ledger/internal/pkg/clock"
	"stock-ledger/internal/pkg/errs"
	"stock-ledger/internal/usecase/ledger"
	"stock-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const ttl = 15 * time.Minute

type LedgerTestSuite struct {
	suite.Suite
	ctx    context.Context
	uow    shared.UnitOfWork
	clock  *clock.MockClock
	ledger *ledger.Ledger
	key    stock.Key
	holder reservation.HolderRef
}

func (s *LedgerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.uow = memory.NewUoW(memory.NewStore())
	s.clock = clock.NewMockClock(time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC))
	s.ledger = ledger.NewLedger(s.uow, s.clock, slog.New(slog.DiscardHandler))
	s.key = stock.Key{ProductID: "sku-1", LocationID: stock.DefaultLocation}

	var err error
	s.holder, err = reservation.NewHolderRef("cart-1")
	s.Require().NoError(err)
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func (s *LedgerTestSuite) initialize(onHand int) {
	_, err := s.ledger.Initialize(s.ctx, s.key, onHand, "admin")
	s.Require().NoError(err)
}

func (s *LedgerTestSuite) reserve(qty int) *reservation.Reservation {
	out, err := s.ledger.Reserve(s.ctx, s.key, qty, s.holder, ttl, "cart")
	s.Require().NoError(err)
	return out.Reservation
}

func (s *LedgerTestSuite) stock() *stock.Record {
	var rec *stock.Record
	err := s.uow.WithinReadOnly(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		rec, err = tx.Stocks().Get(ctx, s.key)
		return err
	})
	s.Require().NoError(err)
	return rec
}

func (s *LedgerTestSuite) sumHeld() int {
	var sum int
	err := s.uow.WithinReadOnly(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		sum, err = tx.Reservations().SumHeld(ctx, s.key)
		return err
	})
	s.Require().NoError(err)
	return sum
}

func (s *LedgerTestSuite) assertQuantities(onHand, reserved int) {
	s.T().Helper()
	rec := s.stock()
	s.Equal(onHand, rec.OnHand(), "on-hand")
	s.Equal(reserved, rec.Reserved(), "reserved")
	s.Equal(onHand-reserved, rec.Available(), "available")
	s.Equal(rec.Reserved(), s.sumHeld(), "sum of held reservations must equal reserved")
}

func (s *LedgerTestSuite) TestCheckoutScenario() {
	s.initialize(10)

	a := s.reserve(4)
	s.assertQuantities(10, 4)
	b := s.reserve(6)
	s.assertQuantities(10, 10)

	_, err := s.ledger.Reserve(s.ctx, s.key, 1, s.holder, ttl, "cart")
	s.ErrorIs(err, errs.ErrInsufficientStock)
	s.assertQuantities(10, 10)

	out, err := s.ledger.Confirm(s.ctx, a.ID(), "payments")
	s.Require().NoError(err)
	s.True(out.Changed)
	s.Equal(reservation.StateConfirmed, out.Reservation.State())
	s.assertQuantities(6, 6)

	out, err = s.ledger.Cancel(s.ctx, b.ID(), "cart")
	s.Require().NoError(err)
	s.Equal(reservation.StateCancelled, out.Reservation.State())
	s.assertQuantities(6, 0)
}

func (s *LedgerTestSuite) TestReserveErrors() {
	s.Run("unknown key", func() {
		_, err := s.ledger.Reserve(s.ctx, stock.Key{ProductID: "ghost", LocationID: "default"}, 1, s.holder, ttl, "cart")
		s.ErrorIs(err, errs.ErrNotFound)
	})

	s.initialize(5)

	s.Run("non-positive quantity", func() {
		_, err := s.ledger.Reserve(s.ctx, s.key, 0, s.holder, ttl, "cart")
		s.ErrorIs(err, errs.ErrValidation)
	})

	s.Run("no partial reservation", func() {
		_, err := s.ledger.Reserve(s.ctx, s.key, 6, s.holder, ttl, "cart")
		s.ErrorIs(err, errs.ErrInsufficientStock)
		s.assertQuantities(5, 0)
	})
}

func (s *LedgerTestSuite) TestNoOversellUnderConcurrency() {
	const (
		onHand  = 25
		workers = 100
	)
	s.initialize(onHand)

	var (
		wg           sync.WaitGroup
		succeeded    atomic.Int64
		insufficient atomic.Int64
	)
	start := make(chan struct{})
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := s.ledger.Reserve(s.ctx, s.key, 1, s.holder, ttl, "cart")
			switch {
			case err == nil:
				succeeded.Add(1)
			case errs.Is(err, errs.ErrInsufficientStock):
				insufficient.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	s.EqualValues(onHand, succeeded.Load())
	s.EqualValues(workers-onHand, insufficient.Load())
	s.assertQuantities(onHand, onHand)
}

func (s *LedgerTestSuite) TestIndependentKeysDoNotBlock() {
	s.initialize(1)
	other := stock.Key{ProductID: "sku-2", LocationID: "wh-east"}
	_, err := s.ledger.Initialize(s.ctx, other, 1, "admin")
	s.Require().NoError(err)

	// Hold sku-1's lock in an open unit of work while sku-2 is reserved.
	locked := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
			if _, err := tx.Stocks().GetForUpdate(ctx, s.key); err != nil {
				return err
			}
			close(locked)
			<-release
			return nil
		})
	}()
	<-locked

	ctx, cancel := context.WithTimeout(s.ctx, time.Second)
	defer cancel()
	_, err = s.ledger.Reserve(ctx, other, 1, s.holder, ttl, "cart")
	s.NoError(err)

	close(release)
	s.NoError(<-done)
}

func (s *LedgerTestSuite) TestConfirmIsIdempotent() {
	s.initialize(10)
	res := s.reserve(3)

	first, err := s.ledger.Confirm(s.ctx, res.ID(), "payments")
	s.Require().NoError(err)
	s.True(first.Changed)

	for range 3 {
		again, err := s.ledger.Confirm(s.ctx, res.ID(), "payments")
		s.Require().NoError(err)
		s.False(again.Changed)
		s.Equal(reservation.StateConfirmed, again.Reservation.State())
	}
	s.assertQuantities(7, 0)

	var adjustments []stock.Adjustment
	err = s.uow.WithinReadOnly(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		adjustments, err = tx.Adjustments().ListByKey(ctx, s.key, 10)
		return err
	})
	s.Require().NoError(err)
	s.Require().Len(adjustments, 2, "initial restock plus exactly one sale")
	s.Equal(stock.ReasonSale, adjustments[0].Reason)
	s.Equal(-3, adjustments[0].Delta)
	s.Equal(-3, adjustments[0].ReservedDelta)
	s.Equal(res.ID(), *adjustments[0].ReservationID)
}

func (s *LedgerTestSuite) TestConcurrentConfirmCommitsOnce() {
	s.initialize(10)
	res := s.reserve(4)

	var (
		wg      sync.WaitGroup
		changed atomic.Int64
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := s.ledger.Confirm(s.ctx, res.ID(), "payments")
			if err == nil && out.Changed {
				changed.Add(1)
			}
		}()
	}
	wg.Wait()

	s.EqualValues(1, changed.Load())
	s.assertQuantities(6, 0)
}

func (s *LedgerTestSuite) TestStateMachineClosure() {
	s.initialize(10)

	confirmed := s.reserve(1)
	_, err := s.ledger.Confirm(s.ctx, confirmed.ID(), "payments")
	s.Require().NoError(err)

	cancelled := s.reserve(1)
	_, err = s.ledger.Cancel(s.ctx, cancelled.ID(), "cart")
	s.Require().NoError(err)

	expired := s.reserve(1)
	s.clock.Add(ttl)
	_, err = s.ledger.Expire(s.ctx, expired.ID())
	s.Require().NoError(err)

	before := s.stock()

	s.Run("cancel from any terminal state", func() {
		for _, id := range []uuid.UUID{confirmed.ID(), cancelled.ID(), expired.ID()} {
			_, err := s.ledger.Cancel(s.ctx, id, "cart")
			s.ErrorIs(err, errs.ErrInvalidState)
		}
	})

	s.Run("expire from any terminal state", func() {
		for _, id := range []uuid.UUID{confirmed.ID(), cancelled.ID(), expired.ID()} {
			_, err := s.ledger.Expire(s.ctx, id)
			s.ErrorIs(err, errs.ErrInvalidState)
		}
	})

	s.Run("confirm from cancelled or expired", func() {
		for _, id := range []uuid.UUID{cancelled.ID(), expired.ID()} {
			_, err := s.ledger.Confirm(s.ctx, id, "payments")
			s.ErrorIs(err, errs.ErrInvalidState)
		}
	})

	after := s.stock()
	s.Equal(before.OnHand(), after.OnHand())
	s.Equal(before.Reserved(), after.Reserved())
	s.assertQuantities(9, 0)
}

func (s *LedgerTestSuite) TestExpire() {
	s.initialize(10)
	res := s.reserve(4)

	s.Run("not yet due", func() {
		s.clock.Add(ttl - time.Second)
		_, err := s.ledger.Expire(s.ctx, res.ID())
		s.ErrorIs(err, errs.ErrInvalidState)
		s.assertQuantities(10, 4)
	})

	s.Run("due releases reserved exactly once", func() {
		s.clock.Add(time.Second)
		out, err := s.ledger.Expire(s.ctx, res.ID())
		s.Require().NoError(err)
		s.Equal(reservation.StateExpired, out.Reservation.State())
		s.Nil(out.Reservation.ExpiresAt())
		s.assertQuantities(10, 0)

		_, err = s.ledger.Expire(s.ctx, res.ID())
		s.ErrorIs(err, errs.ErrInvalidState)
		s.assertQuantities(10, 0)
	})

	s.Run("unknown reservation", func() {
		_, err := s.ledger.Expire(s.ctx, uuid.New())
		s.ErrorIs(err, errs.ErrNotFound)
	})
}

func (s *LedgerTestSuite) TestExpireRacesConfirm() {
	s.initialize(10)
	res := s.reserve(5)
	s.clock.Add(ttl)

	var (
		wg                 sync.WaitGroup
		confirmErr, expErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, confirmErr = s.ledger.Confirm(s.ctx, res.ID(), "payments")
	}()
	go func() {
		defer wg.Done()
		_, expErr = s.ledger.Expire(s.ctx, res.ID())
	}()
	wg.Wait()

	// Exactly one wins; the loser sees InvalidState and changes nothing.
	if confirmErr == nil {
		s.ErrorIs(expErr, errs.ErrInvalidState)
		s.assertQuantities(5, 0)
	} else {
		s.ErrorIs(confirmErr, errs.ErrInvalidState)
		s.NoError(expErr)
		s.assertQuantities(10, 0)
	}
}

func (s *LedgerTestSuite) TestReservationEvents() {
	s.initialize(10)
	res := s.reserve(2)
	_, err := s.ledger.Cancel(s.ctx, res.ID(), "support")
	s.Require().NoError(err)

	var events []reservation.Event
	err = s.uow.WithinReadOnly(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		events, err = tx.Reservations().ListEvents(ctx, res.ID())
		return err
	})
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal(reservation.EventCreated, events[0].Type)
	s.Equal("cart", events[0].Actor)
	s.Equal(reservation.EventCancelled, events[1].Type)
	s.Equal("support", events[1].Actor)
	s.Equal(2, events[1].Quantity)
	s.Less(events[0].ID, events[1].ID)
}

func (s *LedgerTestSuite) TestAdjustOnHand() {
	s.initialize(10)
	s.reserve(4)

	out, err := s.ledger.AdjustOnHand(s.ctx, s.key, 5, stock.ReasonRestock, "ops")
	s.Require().NoError(err)
	s.Equal(15, out.Stock.OnHand())

	_, err = s.ledger.AdjustOnHand(s.ctx, s.key, -12, stock.ReasonCorrection, "ops")
	s.ErrorIs(err, errs.ErrInvalidAdjustment)
	s.assertQuantities(15, 4)

	_, err = s.ledger.AdjustOnHand(s.ctx, s.key, 0, stock.ReasonCorrection, "ops")
	s.ErrorIs(err, errs.ErrValidation)

	_, err = s.ledger.AdjustOnHand(s.ctx, s.key, 1, stock.Reason("gift"), "ops")
	s.ErrorIs(err, errs.ErrValidation)
}

func (s *LedgerTestSuite) TestOverride() {
	s.initialize(10)
	onHand, reserved := 20, 0

	out, err := s.ledger.Override(s.ctx, s.key, &onHand, nil, "ops")
	s.Require().NoError(err)
	s.True(out.Changed)
	s.Equal(20, out.Stock.OnHand())

	out, err = s.ledger.Override(s.ctx, s.key, &onHand, &reserved, "ops")
	s.Require().NoError(err)
	s.False(out.Changed, "same values are a no-op")

	tooMany := 21
	_, err = s.ledger.Override(s.ctx, s.key, nil, &tooMany, "ops")
	s.ErrorIs(err, errs.ErrInvalidAdjustment)

	var adjustments []stock.Adjustment
	err = s.uow.WithinReadOnly(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		adjustments, err = tx.Adjustments().ListByKey(ctx, s.key, 10)
		return err
	})
	s.Require().NoError(err)
	s.Require().Len(adjustments, 2)
	s.Equal(stock.ReasonCorrection, adjustments[0].Reason)
	s.Equal(10, adjustments[0].Delta)
}

func (s *LedgerTestSuite) TestOverrideWithLiveHolds() {
	s.Run("reserved must match held reservations", func() {
		s.SetupTest()
		s.initialize(10)
		res := s.reserve(4)

		for _, want := range []int{0, 3, 5} {
			_, err := s.ledger.Override(s.ctx, s.key, nil, &want, "ops")
			s.ErrorIs(err, errs.ErrInvalidAdjustment, "reserved=%d", want)
		}
		s.assertQuantities(10, 4)

		onHand, reserved := 12, 4
		out, err := s.ledger.Override(s.ctx, s.key, &onHand, &reserved, "ops")
		s.Require().NoError(err)
		s.True(out.Changed)
		s.assertQuantities(12, 4)

		_, err = s.ledger.Cancel(s.ctx, res.ID(), "cart")
		s.Require().NoError(err)
		s.assertQuantities(12, 0)
	})

	s.Run("held reservations still expire after an on-hand override", func() {
		s.SetupTest()
		s.initialize(10)
		res := s.reserve(4)

		onHand := 4
		_, err := s.ledger.Override(s.ctx, s.key, &onHand, nil, "ops")
		s.Require().NoError(err)
		s.assertQuantities(4, 4)

		s.clock.Add(ttl)
		_, err = s.ledger.Expire(s.ctx, res.ID())
		s.Require().NoError(err)
		s.assertQuantities(4, 0)
	})

	s.Run("removal is refused while reservations are held", func() {
		s.SetupTest()
		s.initialize(10)
		s.reserve(4)

		zero := 0
		_, err := s.ledger.Override(s.ctx, s.key, nil, &zero, "ops")
		s.ErrorIs(err, errs.ErrInvalidAdjustment)

		_, err = s.ledger.Remove(s.ctx, s.key, "admin")
		s.ErrorIs(err, errs.ErrInvalidState)
		s.assertQuantities(10, 4)
	})
}

func (s *LedgerTestSuite) TestInitializeAndRemove() {
	s.initialize(3)

	_, err := s.ledger.Initialize(s.ctx, s.key, 3, "admin")
	s.ErrorIs(err, errs.ErrInvalidState)

	res := s.reserve(1)
	_, err = s.ledger.Remove(s.ctx, s.key, "admin")
	s.ErrorIs(err, errs.ErrInvalidState, "outstanding holds block removal")

	_, err = s.ledger.Cancel(s.ctx, res.ID(), "cart")
	s.Require().NoError(err)
	_, err = s.ledger.Remove(s.ctx, s.key, "admin")
	s.Require().NoError(err)

	_, err = s.ledger.Reserve(s.ctx, s.key, 1, s.holder, ttl, "cart")
	s.ErrorIs(err, errs.ErrNotFound)
	_, err = s.ledger.AdjustOnHand(s.ctx, s.key, 1, stock.ReasonRestock, "ops")
	s.ErrorIs(err, errs.ErrNotFound)
	_, err = s.ledger.Initialize(s.ctx, s.key, 1, "admin")
	s.ErrorIs(err, errs.ErrInvalidState, "removed keys are not recycled")
}

func TestLedgerRespectsContextWhileWaitingForLock(t *testing.T) {
	uow := memory.NewUoW(memory.NewStore())
	l := ledger.NewLedger(uow, clock.NewRealClock(), slog.New(slog.DiscardHandler))
	key := stock.Key{ProductID: "sku-1", LocationID: stock.DefaultLocation}
	_, err := l.Initialize(context.Background(), key, 1, "admin")
	require.NoError(t, err)

	locked := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = uow.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Stocks().GetForUpdate(ctx, key)
			close(locked)
			<-release
			return err
		})
	}()
	<-locked
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	holder, _ := reservation.NewHolderRef("cart")
	_, err = l.Reserve(ctx, key, 1, holder, time.Minute, "cart")
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed), err.Error())
}
