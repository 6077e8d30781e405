//go:build unit || e2e

package builder

import (
	"time"

	"stock-ledger/internal/domain/stock"
	reqdto "stock-ledger/internal/handler/dto/request"
	sqlc "stock-ledger/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5/pgtype"
)

type StockBuilder struct {
	ProductID  string
	LocationID string
	OnHand     int
	Reserved   int
	RemovedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewStockBuilder() *StockBuilder {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	return &StockBuilder{
		ProductID:  "sku-001",
		LocationID: stock.DefaultLocation,
		OnHand:     10,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *StockBuilder) With(mutate func(*StockBuilder)) *StockBuilder {
	mutate(b)
	return b
}

func (b *StockBuilder) WithQuantities(onHand, reserved int) *StockBuilder {
	b.OnHand, b.Reserved = onHand, reserved
	return b
}

func (b *StockBuilder) Key() stock.Key {
	return stock.Key{ProductID: b.ProductID, LocationID: b.LocationID}
}

// Build methods
func (b *StockBuilder) BuildDomain() *stock.Record {
	return stock.ReconstructRecord(b.Key(), b.OnHand, b.Reserved, b.RemovedAt, b.CreatedAt, b.UpdatedAt)
}

func (b *StockBuilder) BuildInfra() sqlc.StockRecord {
	row := sqlc.StockRecord{
		ProductID:  b.ProductID,
		LocationID: b.LocationID,
		OnHand:     int32(b.OnHand),   // #nosec G115 -- test fixture
		Reserved:   int32(b.Reserved), // #nosec G115 -- test fixture
		CreatedAt:  pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:  pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
	if b.RemovedAt != nil {
		row.RemovedAt = pgtype.Timestamptz{Time: *b.RemovedAt, Valid: true}
	}
	return row
}

func (b *StockBuilder) BuildInitializeDTO() reqdto.InitializeStockRequest {
	return reqdto.InitializeStockRequest{
		ProductID:  b.ProductID,
		LocationID: b.LocationID,
		OnHand:     b.OnHand,
	}
}
