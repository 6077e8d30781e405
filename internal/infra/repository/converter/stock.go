package converter

import (
	"stock-ledger/internal/domain/stock"
	sqlc "stock-ledger/internal/infra/sqlc/generated"
	"stock-ledger/internal/pkg/pgconv"
)

// Quantities are bounded by stock.MaxQuantity in the domain layer.
func int32Of(n int) int32 {
	// #nosec G115 -- bounded by stock.MaxQuantity
	return int32(n)
}

func StockRecordToDomain(row sqlc.StockRecord) *stock.Record {
	return stock.ReconstructRecord(
		stock.Key{ProductID: row.ProductID, LocationID: row.LocationID},
		int(row.OnHand),
		int(row.Reserved),
		pgconv.TimePtrFromPgtype(row.RemovedAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func StockRecordToCreateParams(rec *stock.Record) sqlc.CreateStockRecordParams {
	return sqlc.CreateStockRecordParams{
		ProductID:  rec.Key().ProductID,
		LocationID: rec.Key().LocationID,
		OnHand:     int32Of(rec.OnHand()),
		Reserved:   int32Of(rec.Reserved()),
		CreatedAt:  pgconv.TimeToPgtype(rec.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(rec.UpdatedAt()),
	}
}

func StockRecordToUpdateParams(rec *stock.Record) sqlc.UpdateStockRecordParams {
	return sqlc.UpdateStockRecordParams{
		ProductID:  rec.Key().ProductID,
		LocationID: rec.Key().LocationID,
		OnHand:     int32Of(rec.OnHand()),
		Reserved:   int32Of(rec.Reserved()),
		RemovedAt:  pgconv.TimePtrToPgtype(rec.RemovedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(rec.UpdatedAt()),
	}
}

func AdjustmentToParams(adj stock.Adjustment) sqlc.AppendAdjustmentEventParams {
	return sqlc.AppendAdjustmentEventParams{
		ProductID:     adj.Key.ProductID,
		LocationID:    adj.Key.LocationID,
		Delta:         int32Of(adj.Delta),
		ReservedDelta: int32Of(adj.ReservedDelta),
		Reason:        adj.Reason.String(),
		Actor:         adj.Actor,
		ReservationID: pgconv.UUIDPtrToPgtype(adj.ReservationID),
		OccurredAt:    pgconv.TimeToPgtype(adj.OccurredAt),
	}
}

func AdjustmentToDomain(row sqlc.AdjustmentEvent) stock.Adjustment {
	return stock.Adjustment{
		ID:            row.ID,
		Key:           stock.Key{ProductID: row.ProductID, LocationID: row.LocationID},
		Delta:         int(row.Delta),
		ReservedDelta: int(row.ReservedDelta),
		Reason:        stock.Reason(row.Reason),
		Actor:         row.Actor,
		ReservationID: pgconv.UUIDPtrFromPgtype(row.ReservationID),
		OccurredAt:    pgconv.TimeFromPgtype(row.OccurredAt),
	}
}
