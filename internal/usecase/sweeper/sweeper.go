package sweeper

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"stock-ledger/internal/domain/stock"
	"stock-ledger/internal/pkg/clock"
	"stock-ledger/internal/pkg/config"
	"stock-ledger/internal/pkg/errs"
	"stock-ledger/internal/usecase/ledger"
	"stock-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type Expirer interface {
	Expire(ctx context.Context, id uuid.UUID) (ledger.Outcome, error)
}

// Result counts one sweep. Skipped reservations lost a race to a
// confirm or cancel; Failed ones hit an unexpected error and stay HELD
// for the next pass.
type Result struct {
	Expired int
	Skipped int
	Failed  int
}

// Sweeper reclaims expired holds. Each reservation expires in its own
// transaction so one failure never blocks the rest of the batch.
type Sweeper struct {
	uow       shared.UnitOfWork
	expirer   Expirer
	emitter   *shared.ChangeEmitter
	clock     clock.Clock
	logger    *slog.Logger
	interval  time.Duration
	batchSize int

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewSweeper(
	uow shared.UnitOfWork,
	expirer Expirer,
	emitter *shared.ChangeEmitter,
	clock clock.Clock,
	logger *slog.Logger,
	cfg config.Config,
) *Sweeper {
	return &Sweeper{
		uow:       uow,
		expirer:   expirer,
		emitter:   emitter,
		clock:     clock,
		logger:    logger,
		interval:  cfg.Ledger.SweepInterval,
		batchSize: cfg.Ledger.SweepBatchSize,
	}
}

// SweepOnce expires up to one batch of due reservations across all keys.
func (s *Sweeper) SweepOnce(ctx context.Context) (Result, error) {
	now := s.clock.Now()
	var ids []uuid.UUID
	err := s.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		ids, err = tx.Reservations().ListDueHeld(ctx, now, s.batchSize)
		return err
	})
	if err != nil {
		return Result{}, errs.Wrap(err, "failed to list due reservations")
	}
	return s.expireAll(ctx, ids), nil
}

// SweepProduct expires every due reservation of one key.
func (s *Sweeper) SweepProduct(ctx context.Context, key stock.Key) (Result, error) {
	now := s.clock.Now()
	var ids []uuid.UUID
	err := s.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		ids, err = tx.Reservations().ListDueHeldByKey(ctx, key, now)
		return err
	})
	if err != nil {
		return Result{}, errs.Wrapf(err, "failed to list due reservations for %s", key)
	}
	return s.expireAll(ctx, ids), nil
}

func (s *Sweeper) expireAll(ctx context.Context, ids []uuid.UUID) Result {
	var result Result
	for _, id := range ids {
		if ctx.Err() != nil {
			break
		}
		out, err := s.expirer.Expire(ctx, id)
		switch {
		case err == nil:
			result.Expired++
			s.emitter.Emit(ctx, out.Stock, shared.CauseExpired)
		case errs.Is(err, errs.ErrInvalidState), errs.Is(err, errs.ErrNotFound):
			result.Skipped++
		default:
			result.Failed++
			s.logger.Error("failed to expire reservation",
				"reservation_id", id.String(),
				"error", err.Error())
		}
	}
	return result
}

// Run sweeps every interval until ctx is done.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			result, err := s.SweepOnce(ctx)
			if err != nil {
				if ctx.Err() == nil {
					s.logger.Error("sweep failed", "error", err.Error())
				}
				continue
			}
			if result.Expired > 0 || result.Failed > 0 {
				s.logger.Info("sweep completed",
					"expired", result.Expired,
					"skipped", result.Skipped,
					"failed", result.Failed)
			}
		}
	}
}

// Start launches Run in the background. Calling Start twice is a no-op.
func (s *Sweeper) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	go func() {
		defer close(s.done)
		s.Run(ctx)
	}()
}

// Stop cancels the loop and waits for the in-flight sweep or ctx.
func (s *Sweeper) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()
	if cancel == nil {
		return nil
	}
	cancel()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
