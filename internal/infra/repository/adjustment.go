package repository

import (
	"context"

	"stock-ledger/internal/domain/stock"
	"stock-ledger/internal/infra"
	"stock-ledger/internal/infra/repository/converter"
	sqlc "stock-ledger/internal/infra/sqlc/generated"
)

type AdjustmentRepository struct {
	queries AdjustmentQueries
	db      sqlc.DBTX
}

func NewAdjustmentRepository(queries AdjustmentQueries, db sqlc.DBTX) *AdjustmentRepository {
	return &AdjustmentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AdjustmentRepository) Append(ctx context.Context, adj stock.Adjustment) error {
	if err := r.queries.AppendAdjustmentEvent(ctx, r.db, converter.AdjustmentToParams(adj)); err != nil {
		return infra.WrapRepoErr("failed to append adjustment for "+adj.Key.String(), err)
	}
	return nil
}

// ListByKey returns the newest adjustments first.
func (r *AdjustmentRepository) ListByKey(ctx context.Context, key stock.Key, limit int) ([]stock.Adjustment, error) {
	rows, err := r.queries.ListAdjustmentEvents(ctx, r.db, sqlc.ListAdjustmentEventsParams{
		ProductID:  key.ProductID,
		LocationID: key.LocationID,
		Limit:      clampLimit(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list adjustments for "+key.String(), err)
	}
	adjustments := make([]stock.Adjustment, 0, len(rows))
	for _, row := range rows {
		adjustments = append(adjustments, converter.AdjustmentToDomain(row))
	}
	return adjustments, nil
}
