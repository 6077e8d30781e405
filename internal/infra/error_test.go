//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"stock-ledger/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind infra.RepositoryErrorKind
	}{
		{"no rows", pgx.ErrNoRows, infra.KindNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, infra.KindDuplicateKey},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, infra.KindForeignKeyViolated},
		{"check violation", &pgconn.PgError{Code: "23514"}, infra.KindCheckViolated},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, infra.KindDBFailure},
		{"plain error", errors.New("conn reset"), infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("failed to load stock", tt.err)

			assert.True(t, infra.IsKind(err, tt.kind))
			assert.ErrorIs(t, err, tt.err)
			assert.Contains(t, err.Error(), "failed to load stock")
		})
	}

	t.Run("explicit kind wins", func(t *testing.T) {
		err := infra.WrapRepoErr("stock exists", errors.New("x"), infra.KindDuplicateKey)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("not found without cause", func(t *testing.T) {
		err := infra.NotFound("reservation 42")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Equal(t, "NOT_FOUND: reservation 42", err.Error())
		assert.False(t, infra.IsKind(errors.New("other"), infra.KindNotFound))
	})
}
