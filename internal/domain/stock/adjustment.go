package stock

import (
	"time"

	"stock-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

type Reason string

const (
	ReasonRestock    Reason = "restock"
	ReasonCorrection Reason = "correction"
	ReasonSale       Reason = "sale"
	ReasonReturn     Reason = "return"
)

func (r Reason) String() string {
	return string(r)
}

func (r Reason) IsValid() bool {
	switch r {
	case ReasonRestock, ReasonCorrection, ReasonSale, ReasonReturn:
		return true
	default:
		return false
	}
}

func NewReason(s string) (Reason, error) {
	reason := Reason(s)
	if !reason.IsValid() {
		return "", errs.Wrapf(errs.ErrValidation, "unknown adjustment reason %q", s)
	}
	return reason, nil
}

// Adjustment is one append-only audit entry. Delta applies to on-hand;
// ReservedDelta is non-zero only for sales and administrative overrides.
type Adjustment struct {
	ID            int64
	Key           Key
	Delta         int
	ReservedDelta int
	Reason        Reason
	Actor         string
	ReservationID *uuid.UUID
	OccurredAt    time.Time
}
