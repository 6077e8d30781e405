package repository

import (
	"context"

	sqlc "stock-ledger/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

// Query sets each repository needs from the generated sqlc package.

type StockQueries interface {
	GetStockRecord(ctx context.Context, db sqlc.DBTX, arg sqlc.GetStockRecordParams) (sqlc.StockRecord, error)
	GetStockRecordForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetStockRecordForUpdateParams) (sqlc.StockRecord, error)
	CreateStockRecord(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateStockRecordParams) error
	UpdateStockRecord(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateStockRecordParams) (int64, error)
}

type ReservationQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	GetReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservation, error)
	GetReservationForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservation, error)
	UpdateReservationState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStateParams) (int64, error)
	ListDueHeldReservationIDs(ctx context.Context, db sqlc.DBTX, arg sqlc.ListDueHeldReservationIDsParams) ([]uuid.UUID, error)
	ListDueHeldReservationIDsByStock(ctx context.Context, db sqlc.DBTX, arg sqlc.ListDueHeldReservationIDsByStockParams) ([]uuid.UUID, error)
	SumHeldQuantity(ctx context.Context, db sqlc.DBTX, arg sqlc.SumHeldQuantityParams) (int32, error)
	AppendReservationEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.AppendReservationEventParams) error
	ListReservationEvents(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) ([]sqlc.ReservationEvent, error)
}

type AdjustmentQueries interface {
	AppendAdjustmentEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.AppendAdjustmentEventParams) error
	ListAdjustmentEvents(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAdjustmentEventsParams) ([]sqlc.AdjustmentEvent, error)
}
