package converter

import (
	"stock-ledger/internal/domain/reservation"
	"stock-ledger/internal/domain/stock"
	sqlc "stock-ledger/internal/infra/sqlc/generated"
	"stock-ledger/internal/pkg/pgconv"
)

func ReservationToCreateParams(res *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		ID:         res.ID(),
		ProductID:  res.Key().ProductID,
		LocationID: res.Key().LocationID,
		Quantity:   int32Of(res.Quantity()),
		State:      res.State().String(),
		HolderRef:  res.HolderRef().String(),
		CreatedAt:  pgconv.TimeToPgtype(res.CreatedAt()),
		ExpiresAt:  pgconv.TimePtrToPgtype(res.ExpiresAt()),
		UpdatedAt:  pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationToUpdateParams(res *reservation.Reservation) sqlc.UpdateReservationStateParams {
	return sqlc.UpdateReservationStateParams{
		ID:        res.ID(),
		State:     res.State().String(),
		ExpiresAt: pgconv.TimePtrToPgtype(res.ExpiresAt()),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

// Rows are trusted: the schema constrains state and holder_ref.
func ReservationToDomain(row sqlc.Reservation) *reservation.Reservation {
	holder, _ := reservation.NewHolderRef(row.HolderRef)
	return reservation.ReconstructReservation(
		row.ID,
		stock.Key{ProductID: row.ProductID, LocationID: row.LocationID},
		int(row.Quantity),
		reservation.State(row.State),
		holder,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimePtrFromPgtype(row.ExpiresAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func ReservationEventToParams(ev reservation.Event) sqlc.AppendReservationEventParams {
	return sqlc.AppendReservationEventParams{
		ReservationID: ev.ReservationID,
		EventType:     ev.Type.String(),
		Quantity:      int32Of(ev.Quantity),
		Actor:         ev.Actor,
		OccurredAt:    pgconv.TimeToPgtype(ev.OccurredAt),
	}
}

func ReservationEventToDomain(row sqlc.ReservationEvent) reservation.Event {
	return reservation.Event{
		ID:            row.ID,
		ReservationID: row.ReservationID,
		Type:          reservation.EventType(row.EventType),
		Quantity:      int(row.Quantity),
		Actor:         row.Actor,
		OccurredAt:    pgconv.TimeFromPgtype(row.OccurredAt),
	}
}
