//go:build unit

package queries_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"stock-ledger/internal/domain/reservation"
	"stock-ledger/internal/domain/stock"
	"stock-ledger/internal/domain/user"
	"stock-ledger/internal/infra/memory"
	"stock-ledger/internal/pkg/clock"
	"stock-ledger/internal/pkg/config"
	"stock-ledger/internal/pkg/errs"
	"stock-ledger/internal/usecase/ledger"
	"stock-ledger/internal/usecase/queries"
	"stock-ledger/internal/usecase/shared"
	"stock-ledger/internal/usecase/sweeper"
	queriesmock "stock-ledger/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InventoryQueriesTestSuite struct {
	suite.Suite
	ctx         context.Context
	ctrl        *gomock.Controller
	mockSweeper *queriesmock.MockProductSweeper
	uow         shared.UnitOfWork
	clock       *clock.MockClock
	ledger      *ledger.Ledger
	queries     queries.InventoryQueries
	key         stock.Key
	operator    shared.Actor
}

func (s *InventoryQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockSweeper = queriesmock.NewMockProductSweeper(s.ctrl)
	s.uow = memory.NewUoW(memory.NewStore())
	s.clock = clock.NewMockClock(time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC))
	s.ledger = ledger.NewLedger(s.uow, s.clock, slog.New(slog.DiscardHandler))
	s.queries = queries.NewInventoryQueries(s.uow, s.mockSweeper, config.NewTestConfig(), slog.New(slog.DiscardHandler))
	s.key = stock.Key{ProductID: "sku-1", LocationID: stock.DefaultLocation}
	s.operator = shared.Actor{ID: "ops", Role: user.RoleOperator}

	_, err := s.ledger.Initialize(s.ctx, s.key, 10, "admin")
	s.Require().NoError(err)
}

func (s *InventoryQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestInventoryQueriesSuite(t *testing.T) {
	suite.Run(t, new(InventoryQueriesTestSuite))
}

func (s *InventoryQueriesTestSuite) reserve(qty int) *reservation.Reservation {
	holder, _ := reservation.NewHolderRef("cart-1")
	out, err := s.ledger.Reserve(s.ctx, s.key, qty, holder, time.Minute, "cart")
	s.Require().NoError(err)
	return out.Reservation
}

func (s *InventoryQueriesTestSuite) TestGetStockStatus() {
	s.reserve(3)

	s.Run("success: default location and lazy expiry first", func() {
		s.mockSweeper.EXPECT().SweepProduct(gomock.Any(), s.key).Return(sweeper.Result{}, nil).Times(1)

		view, err := s.queries.GetStockStatus(s.ctx, "sku-1", "")
		s.Require().NoError(err)

		expected := &queries.StockView{ProductID: "sku-1", LocationID: "default", OnHand: 10, Reserved: 3, Available: 7}
		if diff := cmp.Diff(expected, view, cmpopts.IgnoreFields(queries.StockView{}, "UpdatedAt")); diff != "" {
			s.T().Errorf("stock view mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("success: lazy expiry failure still serves the read", func() {
		s.mockSweeper.EXPECT().SweepProduct(gomock.Any(), s.key).Return(sweeper.Result{}, errors.New("boom")).Times(1)

		view, err := s.queries.GetStockStatus(s.ctx, "sku-1", "default")
		s.Require().NoError(err)
		s.Equal(7, view.Available)
	})

	s.Run("error: unknown key", func() {
		s.mockSweeper.EXPECT().SweepProduct(gomock.Any(), gomock.Any()).Return(sweeper.Result{}, nil).Times(1)

		_, err := s.queries.GetStockStatus(s.ctx, "ghost", "")
		s.ErrorIs(err, errs.ErrNotFound)
	})

	s.Run("error: invalid product id", func() {
		_, err := s.queries.GetStockStatus(s.ctx, " ", "")
		s.ErrorIs(err, errs.ErrValidation)
	})
}

func (s *InventoryQueriesTestSuite) TestGetStockStatusWithRealSweeper() {
	cfg := config.NewTestConfig()
	logger := slog.New(slog.DiscardHandler)
	emitter := shared.NewChangeEmitter(noopNotifier{}, 0, s.clock, logger)
	sw := sweeper.NewSweeper(s.uow, s.ledger, emitter, s.clock, logger, cfg)
	q := queries.NewInventoryQueries(s.uow, sw, cfg, logger)

	s.reserve(4)
	s.clock.Add(time.Minute)

	view, err := q.GetStockStatus(s.ctx, "sku-1", "")
	s.Require().NoError(err)
	s.Equal(0, view.Reserved, "overdue hold is reclaimed before the read")
	s.Equal(10, view.Available)
}

func (s *InventoryQueriesTestSuite) TestGetReservationAndEvents() {
	res := s.reserve(2)
	_, err := s.ledger.Confirm(s.ctx, res.ID(), "payments")
	s.Require().NoError(err)

	view, err := s.queries.GetReservation(s.ctx, res.ID())
	s.Require().NoError(err)
	s.Equal(res.ID(), view.ID)
	s.Equal("confirmed", view.State)
	s.Equal("cart-1", view.HolderRef)
	s.Nil(view.ExpiresAt)

	events, err := s.queries.ListReservationEvents(s.ctx, res.ID())
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal("created", events[0].Type)
	s.Equal("confirmed", events[1].Type)
	s.Equal("payments", events[1].Actor)

	_, err = s.queries.GetReservation(s.ctx, uuid.New())
	s.ErrorIs(err, errs.ErrNotFound)
	_, err = s.queries.ListReservationEvents(s.ctx, uuid.New())
	s.ErrorIs(err, errs.ErrNotFound)
}

func (s *InventoryQueriesTestSuite) TestListAdjustments() {
	_, err := s.ledger.AdjustOnHand(s.ctx, s.key, 5, stock.ReasonRestock, "ops")
	s.Require().NoError(err)
	_, err = s.ledger.AdjustOnHand(s.ctx, s.key, -2, stock.ReasonCorrection, "ops")
	s.Require().NoError(err)

	s.Run("success: newest first", func() {
		views, err := s.queries.ListAdjustments(s.ctx, s.operator, "sku-1", "", 0)
		s.Require().NoError(err)
		s.Require().Len(views, 3)
		s.Equal("correction", views[0].Reason)
		s.Equal(-2, views[0].Delta)
		s.Equal("restock", views[2].Reason)
	})

	s.Run("success: limit", func() {
		views, err := s.queries.ListAdjustments(s.ctx, s.operator, "sku-1", "", 1)
		s.Require().NoError(err)
		s.Len(views, 1)
	})

	s.Run("error: viewer is forbidden", func() {
		_, err := s.queries.ListAdjustments(s.ctx, shared.Actor{ID: "shop", Role: user.RoleViewer}, "sku-1", "", 0)
		s.ErrorIs(err, errs.ErrForbidden)
	})

	s.Run("error: unknown key", func() {
		_, err := s.queries.ListAdjustments(s.ctx, s.operator, "ghost", "", 0)
		s.ErrorIs(err, errs.ErrNotFound)
	})
}

type noopNotifier struct{}

func (noopNotifier) Publish(context.Context, shared.StockChanged) error { return nil }
