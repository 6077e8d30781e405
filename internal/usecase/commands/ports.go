package commands

import (
	"context"
	"time"

	"stock-ledger/internal/domain/reservation"
	"stock-ledger/internal/domain/stock"
	"stock-ledger/internal/usecase/ledger"

	"github.com/google/uuid"
)

// Ledger is the transactional write side driven by the facade
type Ledger interface {
	Reserve(ctx context.Context, key stock.Key, quantity int, holder reservation.HolderRef, ttl time.Duration, actor string) (ledger.Outcome, error)
	Confirm(ctx context.Context, id uuid.UUID, actor string) (ledger.Outcome, error)
	Cancel(ctx context.Context, id uuid.UUID, actor string) (ledger.Outcome, error)
	AdjustOnHand(ctx context.Context, key stock.Key, delta int, reason stock.Reason, actor string) (ledger.Outcome, error)
	Override(ctx context.Context, key stock.Key, onHand, reserved *int, actor string) (ledger.Outcome, error)
	Initialize(ctx context.Context, key stock.Key, onHand int, actor string) (ledger.Outcome, error)
	Remove(ctx context.Context, key stock.Key, actor string) (ledger.Outcome, error)
}

type ReserveInput struct {
	ProductID  string
	LocationID string
	Quantity   int
	HolderRef  string
	// Zero means the configured default hold
	TTL time.Duration
}

type ReserveItem struct {
	ProductID  string
	LocationID string
	Quantity   int
}

type ReserveBatchInput struct {
	HolderRef string
	TTL       time.Duration
	Items     []ReserveItem
}

type AdjustInput struct {
	ProductID  string
	LocationID string
	Delta      int
	Reason     string
}

// OverrideItem sets absolute quantities; nil leaves a field unchanged
type OverrideItem struct {
	ProductID  string
	LocationID string
	OnHand     *int
	Reserved   *int
}

type InitializeInput struct {
	ProductID  string
	LocationID string
	OnHand     int
}
