package shared

import (
	"context"
	"time"

	"stock-ledger/internal/domain/stock"
	"stock-ledger/internal/domain/user"
)

// SystemActor is recorded on transitions the service performs on its own.
const SystemActor = "system"

// Actor is the authenticated caller of a facade operation.
type Actor struct {
	ID   string
	Role user.Role
}

func (a Actor) String() string {
	if a.ID == "" {
		return SystemActor
	}
	return a.ID
}

type ChangeCause string

const (
	CauseReserved    ChangeCause = "reserved"
	CauseConfirmed   ChangeCause = "confirmed"
	CauseCancelled   ChangeCause = "cancelled"
	CauseExpired     ChangeCause = "expired"
	CauseAdjusted    ChangeCause = "adjusted"
	CauseOverridden  ChangeCause = "overridden"
	CauseInitialized ChangeCause = "initialized"
	CauseRemoved     ChangeCause = "removed"
)

// StockChanged is published after every committed state change.
type StockChanged struct {
	ProductID  string      `json:"productId"`
	LocationID string      `json:"locationId"`
	OnHand     int         `json:"onHand"`
	Reserved   int         `json:"reserved"`
	Available  int         `json:"available"`
	LowStock   bool        `json:"lowStock"`
	Cause      ChangeCause `json:"cause"`
	OccurredAt time.Time   `json:"occurredAt"`
}

func NewStockChanged(rec *stock.Record, cause ChangeCause, lowStockThreshold int, at time.Time) StockChanged {
	return StockChanged{
		ProductID:  rec.Key().ProductID,
		LocationID: rec.Key().LocationID,
		OnHand:     rec.OnHand(),
		Reserved:   rec.Reserved(),
		Available:  rec.Available(),
		LowStock:   rec.Available() <= lowStockThreshold,
		Cause:      cause,
		OccurredAt: at,
	}
}

// Notifier is the publish-only port for stock change notifications.
type Notifier interface {
	Publish(ctx context.Context, event StockChanged) error
}
