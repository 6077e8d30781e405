//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestStock(t *testing.T, db DBLike, productID, locationID string, onHand int) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO stock_records (product_id, location_id, on_hand, reserved, created_at, updated_at)
		VALUES ($1, $2, $3, 0, now(), now())`,
		productID, locationID, onHand)
	require.NoError(t, err)
}

type StockRow struct {
	OnHand   int
	Reserved int
}

func GetStock(t *testing.T, db DBLike, productID, locationID string) StockRow {
	t.Helper()

	var row StockRow
	err := db.QueryRow(context.Background(),
		"SELECT on_hand, reserved FROM stock_records WHERE product_id = $1 AND location_id = $2",
		productID, locationID).Scan(&row.OnHand, &row.Reserved)
	require.NoError(t, err)
	return row
}

// SumHeld totals held reservations for a key; it must always equal the record's reserved.
func SumHeld(t *testing.T, db DBLike, productID, locationID string) int {
	t.Helper()

	var sum int
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE(SUM(quantity), 0)::int FROM reservations WHERE product_id = $1 AND location_id = $2 AND state = 'held'",
		productID, locationID).Scan(&sum)
	require.NoError(t, err)
	return sum
}

func CountReservationEvents(t *testing.T, db DBLike, eventType string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*)::int FROM reservation_events WHERE event_type = $1", eventType).Scan(&n)
	require.NoError(t, err)
	return n
}

// ExpireNow moves a held reservation's deadline into the past so the sweeper picks it up.
func ExpireNow(t *testing.T, db DBLike, reservationID string) {
	t.Helper()

	tag, err := db.Exec(context.Background(),
		"UPDATE reservations SET expires_at = now() - interval '1 second' WHERE id = $1 AND state = 'held'",
		reservationID)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
