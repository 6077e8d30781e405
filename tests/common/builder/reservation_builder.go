//go:build unit || e2e

package builder

import (
	"time"

	"stock-ledger/internal/domain/reservation"
	"stock-ledger/internal/domain/stock"
	reqdto "stock-ledger/internal/handler/dto/request"
	sqlc "stock-ledger/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationBuilder struct {
	ID         uuid.UUID
	ProductID  string
	LocationID string
	Quantity   int
	State      reservation.State
	HolderRef  string
	CreatedAt  time.Time
	TTL        time.Duration
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:         uuid.New(),
		ProductID:  "sku-001",
		LocationID: stock.DefaultLocation,
		Quantity:   2,
		State:      reservation.StateHeld,
		HolderRef:  "cart-123",
		CreatedAt:  time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
		TTL:        15 * time.Minute,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithState(state reservation.State) *ReservationBuilder {
	b.State = state
	return b
}

func (b *ReservationBuilder) Key() stock.Key {
	return stock.Key{ProductID: b.ProductID, LocationID: b.LocationID}
}

func (b *ReservationBuilder) expiresAt() *time.Time {
	if b.State != reservation.StateHeld {
		return nil
	}
	at := b.CreatedAt.Add(b.TTL)
	return &at
}

// Build methods
func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	holder, _ := reservation.NewHolderRef(b.HolderRef)
	updatedAt := b.CreatedAt
	if b.State != reservation.StateHeld {
		updatedAt = b.CreatedAt.Add(time.Minute)
	}
	return reservation.ReconstructReservation(b.ID, b.Key(), b.Quantity, b.State, holder, b.CreatedAt, b.expiresAt(), updatedAt)
}

func (b *ReservationBuilder) BuildInfra() sqlc.Reservation {
	row := sqlc.Reservation{
		ID:         b.ID,
		ProductID:  b.ProductID,
		LocationID: b.LocationID,
		Quantity:   int32(b.Quantity), // #nosec G115 -- test fixture
		State:      b.State.String(),
		HolderRef:  b.HolderRef,
		CreatedAt:  pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:  pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
	if at := b.expiresAt(); at != nil {
		row.ExpiresAt = pgtype.Timestamptz{Time: *at, Valid: true}
	}
	return row
}

func (b *ReservationBuilder) BuildReserveDTO() reqdto.ReserveRequest {
	return reqdto.ReserveRequest{
		ProductID:  b.ProductID,
		LocationID: b.LocationID,
		Quantity:   b.Quantity,
		HolderRef:  b.HolderRef,
		TTLSeconds: int(b.TTL / time.Second),
	}
}
