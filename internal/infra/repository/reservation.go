package repository

import (
	"context"
	"time"

	"stock-ledger/internal/domain/reservation"
	"stock-ledger/internal/domain/stock"
	"stock-ledger/internal/infra"
	"stock-ledger/internal/infra/repository/converter"
	sqlc "stock-ledger/internal/infra/sqlc/generated"
	"stock-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationRepository struct {
	queries ReservationQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Get(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservation(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservation "+id.String(), err)
	}
	return converter.ReservationToDomain(row), nil
}

func (r *ReservationRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock reservation "+id.String(), err)
	}
	return converter.ReservationToDomain(row), nil
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	if err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToCreateParams(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Save(ctx context.Context, res *reservation.Reservation) error {
	n, err := r.queries.UpdateReservationState(ctx, r.db, converter.ReservationToUpdateParams(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation "+res.ID().String(), err)
	}
	if n == 0 {
		return infra.NotFound("reservation " + res.ID().String())
	}
	return nil
}

func (r *ReservationRepository) ListDueHeld(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	ids, err := r.queries.ListDueHeldReservationIDs(ctx, r.db, sqlc.ListDueHeldReservationIDsParams{
		ExpiresAt: pgconv.TimeToPgtype(now),
		Limit:     clampLimit(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list due reservations", err)
	}
	return ids, nil
}

func (r *ReservationRepository) ListDueHeldByKey(ctx context.Context, key stock.Key, now time.Time) ([]uuid.UUID, error) {
	ids, err := r.queries.ListDueHeldReservationIDsByStock(ctx, r.db, sqlc.ListDueHeldReservationIDsByStockParams{
		ProductID:  key.ProductID,
		LocationID: key.LocationID,
		ExpiresAt:  pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list due reservations for "+key.String(), err)
	}
	return ids, nil
}

func (r *ReservationRepository) SumHeld(ctx context.Context, key stock.Key) (int, error) {
	held, err := r.queries.SumHeldQuantity(ctx, r.db, sqlc.SumHeldQuantityParams{
		ProductID:  key.ProductID,
		LocationID: key.LocationID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum held quantity for "+key.String(), err)
	}
	return int(held), nil
}

func (r *ReservationRepository) AppendEvent(ctx context.Context, ev reservation.Event) error {
	if err := r.queries.AppendReservationEvent(ctx, r.db, converter.ReservationEventToParams(ev)); err != nil {
		return infra.WrapRepoErr("failed to append reservation event", err)
	}
	return nil
}

func (r *ReservationRepository) ListEvents(ctx context.Context, id uuid.UUID) ([]reservation.Event, error) {
	rows, err := r.queries.ListReservationEvents(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservation events", err)
	}
	events := make([]reservation.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, converter.ReservationEventToDomain(row))
	}
	return events, nil
}

func clampLimit(limit int) int32 {
	const maxLimit = 1000
	if limit <= 0 || limit > maxLimit {
		return maxLimit
	}
	// #nosec G115 -- bounded above
	return int32(limit)
}
