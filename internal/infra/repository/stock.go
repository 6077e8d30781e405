package repository

import (
	"context"

	"stock-ledger/internal/domain/stock"
	"stock-ledger/internal/infra"
	"stock-ledger/internal/infra/repository/converter"
	sqlc "stock-ledger/internal/infra/sqlc/generated"
)

// StockRepository reads and writes stock_records within one DBTX.
// Removed records are reported as not found.
type StockRepository struct {
	queries StockQueries
	db      sqlc.DBTX
}

func NewStockRepository(queries StockQueries, db sqlc.DBTX) *StockRepository {
	return &StockRepository{
		queries: queries,
		db:      db,
	}
}

func (r *StockRepository) Get(ctx context.Context, key stock.Key) (*stock.Record, error) {
	row, err := r.queries.GetStockRecord(ctx, r.db, sqlc.GetStockRecordParams{
		ProductID:  key.ProductID,
		LocationID: key.LocationID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get stock record "+key.String(), err)
	}
	return liveRecord(row, key)
}

func (r *StockRepository) GetForUpdate(ctx context.Context, key stock.Key) (*stock.Record, error) {
	row, err := r.queries.GetStockRecordForUpdate(ctx, r.db, sqlc.GetStockRecordForUpdateParams{
		ProductID:  key.ProductID,
		LocationID: key.LocationID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock stock record "+key.String(), err)
	}
	return liveRecord(row, key)
}

func (r *StockRepository) Create(ctx context.Context, rec *stock.Record) error {
	if err := r.queries.CreateStockRecord(ctx, r.db, converter.StockRecordToCreateParams(rec)); err != nil {
		return infra.WrapRepoErr("failed to create stock record "+rec.Key().String(), err)
	}
	return nil
}

func (r *StockRepository) Save(ctx context.Context, rec *stock.Record) error {
	n, err := r.queries.UpdateStockRecord(ctx, r.db, converter.StockRecordToUpdateParams(rec))
	if err != nil {
		return infra.WrapRepoErr("failed to update stock record "+rec.Key().String(), err)
	}
	if n == 0 {
		return infra.NotFound("stock record " + rec.Key().String())
	}
	return nil
}

func liveRecord(row sqlc.StockRecord, key stock.Key) (*stock.Record, error) {
	rec := converter.StockRecordToDomain(row)
	if rec.IsRemoved() {
		return nil, infra.NotFound("stock record " + key.String() + " was removed")
	}
	return rec, nil
}
