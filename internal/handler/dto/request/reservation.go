package request

import (
	"time"

	"stock-ledger/internal/usecase/commands"
)

// MaxTTLSeconds is the largest accepted ttl_seconds (30 days). Holds are
// further capped at the configured maximum.
const MaxTTLSeconds = 30 * 24 * 60 * 60

type ReserveRequest struct {
	ProductID  string `json:"product_id" binding:"required,max=128"`
	LocationID string `json:"location_id" binding:"omitempty,max=128"`
	Quantity   int    `json:"quantity" binding:"required,gt=0"`
	HolderRef  string `json:"holder_ref" binding:"required,max=255"`
	// Zero or omitted uses the configured default hold
	TTLSeconds int `json:"ttl_seconds" binding:"omitempty,gte=0,lte=2592000"`
}

func (r ReserveRequest) ToInput() commands.ReserveInput {
	return commands.ReserveInput{
		ProductID:  r.ProductID,
		LocationID: r.LocationID,
		Quantity:   r.Quantity,
		HolderRef:  r.HolderRef,
		TTL:        time.Duration(r.TTLSeconds) * time.Second,
	}
}

type ReserveBatchItemRequest struct {
	ProductID  string `json:"product_id" binding:"required,max=128"`
	LocationID string `json:"location_id" binding:"omitempty,max=128"`
	Quantity   int    `json:"quantity" binding:"required,gt=0"`
}

type ReserveBatchRequest struct {
	HolderRef  string                    `json:"holder_ref" binding:"required,max=255"`
	TTLSeconds int                       `json:"ttl_seconds" binding:"omitempty,gte=0,lte=2592000"`
	Items      []ReserveBatchItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r ReserveBatchRequest) ToInput() commands.ReserveBatchInput {
	items := make([]commands.ReserveItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, commands.ReserveItem{
			ProductID:  it.ProductID,
			LocationID: it.LocationID,
			Quantity:   it.Quantity,
		})
	}
	return commands.ReserveBatchInput{
		HolderRef: r.HolderRef,
		TTL:       time.Duration(r.TTLSeconds) * time.Second,
		Items:     items,
	}
}
