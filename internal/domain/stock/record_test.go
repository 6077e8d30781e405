//go:build unit

package stock_test

import (
	"testing"
	"time"

	"stock-ledger/internal/domain/stock"
	"stock-ledger/internal/pkg/errs"
	"stock-ledger/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

func ptr(v int) *int { return &v }

func TestNewKey(t *testing.T) {
	t.Run("empty location falls back to default", func(t *testing.T) {
		key, err := stock.NewKey("  sku-1 ", "")
		require.NoError(t, err)
		assert.Equal(t, stock.Key{ProductID: "sku-1", LocationID: stock.DefaultLocation}, key)
	})

	t.Run("product id is required", func(t *testing.T) {
		_, err := stock.NewKey("   ", "wh-1")
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("over-long ids are rejected", func(t *testing.T) {
		long := make([]byte, 129)
		for i := range long {
			long[i] = 'a'
		}
		_, err := stock.NewKey(string(long), "")
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestNewRecord(t *testing.T) {
	key := stock.Key{ProductID: "sku-1", LocationID: stock.DefaultLocation}

	rec, err := stock.NewRecord(key, 10, now)
	require.NoError(t, err)
	assert.Equal(t, 10, rec.OnHand())
	assert.Equal(t, 0, rec.Reserved())
	assert.Equal(t, 10, rec.Available())
	assert.False(t, rec.IsRemoved())

	_, err = stock.NewRecord(key, -1, now)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestRecordHoldReleaseCommit(t *testing.T) {
	t.Run("hold up to available", func(t *testing.T) {
		rec := builder.NewStockBuilder().WithQuantities(10, 4).BuildDomain()

		require.NoError(t, rec.Hold(6, now))
		assert.Equal(t, 10, rec.Reserved())
		assert.Equal(t, 0, rec.Available())
		assert.Equal(t, now, rec.UpdatedAt())
	})

	t.Run("hold beyond available is all-or-nothing", func(t *testing.T) {
		rec := builder.NewStockBuilder().WithQuantities(10, 4).BuildDomain()

		err := rec.Hold(7, now)
		assert.ErrorIs(t, err, errs.ErrInsufficientStock)
		assert.Equal(t, 4, rec.Reserved())
	})

	t.Run("hold rejects non-positive quantities", func(t *testing.T) {
		rec := builder.NewStockBuilder().BuildDomain()
		assert.ErrorIs(t, rec.Hold(0, now), errs.ErrValidation)
		assert.ErrorIs(t, rec.Hold(-2, now), errs.ErrValidation)
	})

	t.Run("release only touches reserved", func(t *testing.T) {
		rec := builder.NewStockBuilder().WithQuantities(10, 4).BuildDomain()

		require.NoError(t, rec.Release(3, now))
		assert.Equal(t, 10, rec.OnHand())
		assert.Equal(t, 1, rec.Reserved())
		assert.ErrorIs(t, rec.Release(2, now), errs.ErrInvalidState)
	})

	t.Run("commit drops reserved and on-hand together", func(t *testing.T) {
		rec := builder.NewStockBuilder().WithQuantities(10, 4).BuildDomain()

		require.NoError(t, rec.Commit(4, now))
		assert.Equal(t, 6, rec.OnHand())
		assert.Equal(t, 0, rec.Reserved())
		assert.Equal(t, 6, rec.Available())
	})
}

func TestRecordAdjustOnHand(t *testing.T) {
	cases := []struct {
		name     string
		delta    int
		errIs    error
		expected int
	}{
		{name: "restock", delta: 5, expected: 15},
		{name: "shrink down to reserved", delta: -6, expected: 4},
		{name: "below reserved is rejected, never clamped", delta: -7, errIs: errs.ErrInvalidAdjustment},
		{name: "below zero is rejected", delta: -11, errIs: errs.ErrInvalidAdjustment},
		{name: "zero delta is a validation error", delta: 0, errIs: errs.ErrValidation},
		{name: "overflow is rejected", delta: stock.MaxQuantity, errIs: errs.ErrInvalidAdjustment},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := builder.NewStockBuilder().WithQuantities(10, 4).BuildDomain()

			err := rec.AdjustOnHand(tc.delta, now)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, 10, rec.OnHand())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, rec.OnHand())
			assert.Equal(t, 4, rec.Reserved())
		})
	}
}

func TestRecordOverride(t *testing.T) {
	t.Run("sets both quantities and reports deltas", func(t *testing.T) {
		rec := builder.NewStockBuilder().WithQuantities(10, 4).BuildDomain()

		dOn, dRes, err := rec.Override(ptr(20), ptr(2), now)
		require.NoError(t, err)
		assert.Equal(t, 10, dOn)
		assert.Equal(t, -2, dRes)
		assert.Equal(t, 20, rec.OnHand())
		assert.Equal(t, 2, rec.Reserved())
	})

	t.Run("nil leaves a field unchanged", func(t *testing.T) {
		rec := builder.NewStockBuilder().WithQuantities(10, 4).BuildDomain()

		dOn, dRes, err := rec.Override(ptr(8), nil, now)
		require.NoError(t, err)
		assert.Equal(t, -2, dOn)
		assert.Equal(t, 0, dRes)
		assert.Equal(t, 4, rec.Reserved())
	})

	t.Run("violations are rejected", func(t *testing.T) {
		for name, q := range map[string][2]*int{
			"on-hand below reserved": {ptr(3), nil},
			"negative reserved":      {nil, ptr(-1)},
			"negative on-hand":       {ptr(-1), ptr(0)},
		} {
			rec := builder.NewStockBuilder().WithQuantities(10, 4).BuildDomain()
			_, _, err := rec.Override(q[0], q[1], now)
			assert.ErrorIs(t, err, errs.ErrInvalidAdjustment, name)
			assert.Equal(t, 10, rec.OnHand(), name)
		}
	})

	t.Run("at least one field is required", func(t *testing.T) {
		rec := builder.NewStockBuilder().BuildDomain()
		_, _, err := rec.Override(nil, nil, now)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestRecordRemove(t *testing.T) {
	rec := builder.NewStockBuilder().WithQuantities(10, 1).BuildDomain()
	assert.ErrorIs(t, rec.Remove(now), errs.ErrInvalidState)
	assert.False(t, rec.IsRemoved())

	require.NoError(t, rec.Release(1, now))
	require.NoError(t, rec.Remove(now))
	assert.True(t, rec.IsRemoved())
	assert.Equal(t, now, *rec.RemovedAt())
}

func TestNewReason(t *testing.T) {
	for _, s := range []string{"restock", "correction", "sale", "return"} {
		r, err := stock.NewReason(s)
		require.NoError(t, err)
		assert.Equal(t, s, r.String())
	}
	_, err := stock.NewReason("shrinkage")
	assert.ErrorIs(t, err, errs.ErrValidation)
}
