package queries

import (
	"time"

	"stock-ledger/internal/domain/reservation"
	"stock-ledger/internal/domain/stock"

	"github.com/google/uuid"
)

// StockView is the read model for one stock record
type StockView struct {
	ProductID  string    `json:"product_id"`
	LocationID string    `json:"location_id"`
	OnHand     int       `json:"on_hand"`
	Reserved   int       `json:"reserved"`
	Available  int       `json:"available"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ReservationView struct {
	ID         uuid.UUID  `json:"id"`
	ProductID  string     `json:"product_id"`
	LocationID string     `json:"location_id"`
	Quantity   int        `json:"quantity"`
	State      string     `json:"state"`
	HolderRef  string     `json:"holder_ref"`
	CreatedAt  time.Time  `json:"created_at"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type ReservationEventView struct {
	ID            int64     `json:"id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	Type          string    `json:"type"`
	Quantity      int       `json:"quantity"`
	Actor         string    `json:"actor"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type AdjustmentView struct {
	ID            int64      `json:"id"`
	ProductID     string     `json:"product_id"`
	LocationID    string     `json:"location_id"`
	Delta         int        `json:"delta"`
	ReservedDelta int        `json:"reserved_delta"`
	Reason        string     `json:"reason"`
	Actor         string     `json:"actor"`
	ReservationID *uuid.UUID `json:"reservation_id,omitempty"`
	OccurredAt    time.Time  `json:"occurred_at"`
}

func NewStockView(rec *stock.Record) *StockView {
	if rec == nil {
		return nil
	}
	return &StockView{
		ProductID:  rec.Key().ProductID,
		LocationID: rec.Key().LocationID,
		OnHand:     rec.OnHand(),
		Reserved:   rec.Reserved(),
		Available:  rec.Available(),
		UpdatedAt:  rec.UpdatedAt(),
	}
}

func NewReservationView(res *reservation.Reservation) *ReservationView {
	if res == nil {
		return nil
	}
	return &ReservationView{
		ID:         res.ID(),
		ProductID:  res.Key().ProductID,
		LocationID: res.Key().LocationID,
		Quantity:   res.Quantity(),
		State:      res.State().String(),
		HolderRef:  res.HolderRef().String(),
		CreatedAt:  res.CreatedAt(),
		ExpiresAt:  res.ExpiresAt(),
		UpdatedAt:  res.UpdatedAt(),
	}
}

func newReservationEventView(ev reservation.Event) *ReservationEventView {
	return &ReservationEventView{
		ID:            ev.ID,
		ReservationID: ev.ReservationID,
		Type:          ev.Type.String(),
		Quantity:      ev.Quantity,
		Actor:         ev.Actor,
		OccurredAt:    ev.OccurredAt,
	}
}

func newAdjustmentView(adj stock.Adjustment) *AdjustmentView {
	return &AdjustmentView{
		ID:            adj.ID,
		ProductID:     adj.Key.ProductID,
		LocationID:    adj.Key.LocationID,
		Delta:         adj.Delta,
		ReservedDelta: adj.ReservedDelta,
		Reason:        adj.Reason.String(),
		Actor:         adj.Actor,
		ReservationID: adj.ReservationID,
		OccurredAt:    adj.OccurredAt,
	}
}
