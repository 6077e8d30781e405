package reservation

import (
	"strings"
	"time"

	"stock-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

const maxHolderRefLength = 255

// HolderRef is an opaque cart, order or user reference supplied by the caller.
type HolderRef struct {
	value string
}

func NewHolderRef(s string) (HolderRef, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return HolderRef{}, errs.Wrap(errs.ErrValidation, "holder reference is required")
	}
	if len(s) > maxHolderRefLength {
		return HolderRef{}, errs.Wrapf(errs.ErrValidation, "holder reference exceeds %d characters", maxHolderRefLength)
	}
	return HolderRef{value: s}, nil
}

func (h HolderRef) String() string {
	return h.value
}

// Event is one append-only entry in a reservation's history.
type Event struct {
	ID            int64
	ReservationID uuid.UUID
	Type          EventType
	Quantity      int
	Actor         string
	OccurredAt    time.Time
}
