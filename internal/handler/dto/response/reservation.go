package response

import (
	"stock-ledger/internal/usecase/queries"
)

type ReservationResponse struct {
	ID         string `json:"id"`
	ProductID  string `json:"product_id"`
	LocationID string `json:"location_id"`
	Quantity   int    `json:"quantity"`
	State      string `json:"state"`
	HolderRef  string `json:"holder_ref"`
	CreatedAt  int64  `json:"created_at"`
	ExpiresAt  *int64 `json:"expires_at,omitempty"`
	UpdatedAt  int64  `json:"updated_at"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	var r ReservationResponse
	copyInto(&r, v)
	return &r
}

type ReservationBatchResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
}

func FromReservationViews(views []*queries.ReservationView) ReservationBatchResponse {
	out := ReservationBatchResponse{Reservations: make([]*ReservationResponse, 0, len(views))}
	for _, v := range views {
		out.Reservations = append(out.Reservations, FromReservationView(v))
	}
	return out
}

type ReservationEventResponse struct {
	ID            int64  `json:"id"`
	ReservationID string `json:"reservation_id"`
	Type          string `json:"type"`
	Quantity      int    `json:"quantity"`
	Actor         string `json:"actor"`
	OccurredAt    int64  `json:"occurred_at"`
}

type ReservationEventListResponse struct {
	Events []ReservationEventResponse `json:"events"`
}

func FromReservationEventViews(views []*queries.ReservationEventView) ReservationEventListResponse {
	out := ReservationEventListResponse{Events: make([]ReservationEventResponse, 0, len(views))}
	for _, v := range views {
		var r ReservationEventResponse
		copyInto(&r, v)
		out.Events = append(out.Events, r)
	}
	return out
}
