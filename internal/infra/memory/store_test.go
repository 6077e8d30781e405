//go:build unit

package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stock-ledger/internal/domain/reservation"
	"stock-ledger/internal/domain/stock"
	"stock-ledger/internal/infra"
	"stock-ledger/internal/infra/memory"
	"stock-ledger/internal/usecase/shared"
	"stock-ledger/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

func seed(t *testing.T, uow shared.UnitOfWork, rec *stock.Record) {
	t.Helper()
	err := uow.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Stocks().Create(ctx, rec)
	})
	require.NoError(t, err)
}

func TestWithinRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	uow := memory.NewUoW(memory.NewStore())
	rec := builder.NewStockBuilder().BuildDomain()
	seed(t, uow, rec)

	boom := errors.New("boom")
	err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		locked, err := tx.Stocks().GetForUpdate(ctx, rec.Key())
		require.NoError(t, err)
		require.NoError(t, locked.Hold(4, now))
		require.NoError(t, tx.Stocks().Save(ctx, locked))

		staged, err := tx.Stocks().Get(ctx, rec.Key())
		require.NoError(t, err)
		assert.Equal(t, 4, staged.Reserved(), "transaction reads its own writes")
		return boom
	})
	require.ErrorIs(t, err, boom)

	err = uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		got, err := tx.Stocks().Get(ctx, rec.Key())
		require.NoError(t, err)
		assert.Equal(t, 0, got.Reserved())
		return nil
	})
	require.NoError(t, err)
}

func TestReadOnlyRejectsWrites(t *testing.T) {
	uow := memory.NewUoW(memory.NewStore())
	rec := builder.NewStockBuilder().BuildDomain()

	err := uow.WithinReadOnly(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Stocks().Create(ctx, rec)
	})
	assert.Error(t, err)
}

func TestStockRepository(t *testing.T) {
	ctx := context.Background()
	uow := memory.NewUoW(memory.NewStore())
	rec := builder.NewStockBuilder().BuildDomain()
	seed(t, uow, rec)

	t.Run("duplicate create", func(t *testing.T) {
		err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Stocks().Create(ctx, builder.NewStockBuilder().BuildDomain())
		})
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("unknown key", func(t *testing.T) {
		err := uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Stocks().Get(ctx, stock.Key{ProductID: "ghost", LocationID: "default"})
			return err
		})
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("removed record reads as not found", func(t *testing.T) {
		removed := builder.NewStockBuilder().With(func(b *builder.StockBuilder) {
			b.ProductID = "sku-gone"
			b.RemovedAt = &now
		}).BuildDomain()
		seed(t, uow, removed)

		err := uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Stocks().Get(ctx, removed.Key())
			return err
		})
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestReservationRepository(t *testing.T) {
	ctx := context.Background()
	uow := memory.NewUoW(memory.NewStore())
	seed(t, uow, builder.NewStockBuilder().WithQuantities(10, 5).BuildDomain())

	early := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.TTL = time.Minute; b.Quantity = 2 }).BuildDomain()
	late := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.TTL = time.Hour; b.Quantity = 3 }).BuildDomain()
	done := builder.NewReservationBuilder().WithState(reservation.StateConfirmed).BuildDomain()

	err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, res := range []*reservation.Reservation{late, early, done} {
			if err := tx.Reservations().Create(ctx, res); err != nil {
				return err
			}
		}
		return tx.Reservations().AppendEvent(ctx, early.Event("cart", now))
	})
	require.NoError(t, err)

	t.Run("orphan reservation", func(t *testing.T) {
		orphan := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.ProductID = "ghost" }).BuildDomain()
		err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Reservations().Create(ctx, orphan)
		})
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})

	_ = uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		t.Run("due holds sorted by deadline", func(t *testing.T) {
			ids, err := tx.Reservations().ListDueHeld(ctx, now.Add(2*time.Hour), 10)
			require.NoError(t, err)
			assert.Equal(t, []uuid.UUID{early.ID(), late.ID()}, ids)

			ids, err = tx.Reservations().ListDueHeld(ctx, now.Add(2*time.Hour), 1)
			require.NoError(t, err)
			assert.Len(t, ids, 1)
		})

		t.Run("deadline is inclusive", func(t *testing.T) {
			ids, err := tx.Reservations().ListDueHeldByKey(ctx, early.Key(), now.Add(time.Minute))
			require.NoError(t, err)
			assert.Len(t, ids, 1)
		})

		t.Run("sum of held", func(t *testing.T) {
			sum, err := tx.Reservations().SumHeld(ctx, early.Key())
			require.NoError(t, err)
			assert.Equal(t, 5, sum)
		})

		t.Run("events get ids on commit", func(t *testing.T) {
			events, err := tx.Reservations().ListEvents(ctx, early.ID())
			require.NoError(t, err)
			require.Len(t, events, 1)
			assert.Equal(t, int64(1), events[0].ID)
		})
		return nil
	})
}

func TestGetForUpdateSerializesSameKey(t *testing.T) {
	uow := memory.NewUoW(memory.NewStore())
	rec := builder.NewStockBuilder().BuildDomain()
	seed(t, uow, rec)

	locked := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = uow.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Stocks().GetForUpdate(ctx, rec.Key())
			close(locked)
			<-release
			return err
		})
	}()
	<-locked

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Stocks().GetForUpdate(ctx, rec.Key())
		return err
	})
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	other := stock.Key{ProductID: "sku-other", LocationID: "default"}
	seed(t, uow, builder.NewStockBuilder().With(func(b *builder.StockBuilder) { b.ProductID = other.ProductID }).BuildDomain())
	err = uow.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Stocks().GetForUpdate(ctx, other)
		return err
	})
	assert.NoError(t, err, "other keys are not blocked")

	close(release)
}
