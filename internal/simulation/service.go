package simulation

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/crossroads/crossroads-api/internal/calculator"
	"github.com/crossroads/crossroads-api/internal/household"
	"github.com/crossroads/crossroads-api/internal/lifeevent"
	"github.com/crossroads/crossroads-api/internal/program"
)

const (
	// DefaultMaxRetries bounds how often a failed calculator call is
	// repeated with identical inputs before escalating.
	DefaultMaxRetries = 2

	// DefaultMaxConcurrency caps simultaneous calculator calls during a
	// sweep so the calculator is not overwhelmed.
	DefaultMaxConcurrency = 8
)

// Service runs life-event simulations and income sweeps. It is stateless
// and request-scoped: nothing is retained between invocations.
type Service struct {
	calc           calculator.Calculator
	builder        *ResultBuilder
	logger         *zap.Logger
	maxRetries     uint64
	maxConcurrency int
}

// Option configures a Service.
type Option func(*Service)

// WithMaxRetries overrides the per-call retry budget.
func WithMaxRetries(n uint64) Option {
	return func(s *Service) { s.maxRetries = n }
}

// WithMaxConcurrency overrides the sweep concurrency cap.
func WithMaxConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxConcurrency = n
		}
	}
}

// NewService creates a simulation service backed by the given calculator
// and program registry.
func NewService(calc calculator.Calculator, programs *program.Registry, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		calc:           calc,
		builder:        NewResultBuilder(programs, logger),
		logger:         logger,
		maxRetries:     DefaultMaxRetries,
		maxConcurrency: DefaultMaxConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Simulate compares a household's taxes and benefits before and after a
// life event. The event is validated first; validation failures return
// before any calculator call. The two calculator calls are independent and
// run concurrently, paired back by their slot in the run, never by arrival
// order.
func (s *Service) Simulate(ctx context.Context, h household.Household, ev lifeevent.Event) (*SimulationResult, error) {
	if err := ev.Validate(h); err != nil {
		return nil, err
	}
	after := ev.Apply(h)

	runID := uuid.New()
	log := s.logger.With(zap.String("run_id", runID.String()), zap.String("event", ev.Type()))
	log.Info("simulating life event",
		zap.String("state", h.State),
		zap.Int("year", h.Year),
		zap.Int("members", h.Size()))

	snapshots := [2]household.Household{h, after}
	var raws [2]calculator.Breakdown

	g, gctx := errgroup.WithContext(ctx)
	for i := range snapshots {
		i := i
		g.Go(func() error {
			raw, err := s.compute(gctx, snapshots[i])
			if err != nil {
				return err
			}
			raws[i] = raw
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("simulation failed", zap.Error(err))
		return nil, err
	}

	return s.builder.Build(ev, h, after, raws[0], raws[1]), nil
}

// compute calls the calculator with retries. Failures are retried with
// identical inputs up to the budget, then escalated to a ServiceError.
// Context cancellation stops retrying immediately.
func (s *Service) compute(ctx context.Context, h household.Household) (calculator.Breakdown, error) {
	var out calculator.Breakdown
	attempt := 0

	op := func() error {
		attempt++
		raw, err := s.calc.Compute(ctx, h)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			s.logger.Warn("calculator call failed",
				zap.Int("attempt", attempt),
				zap.Error(err))
			return err
		}
		out = raw
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(newBackOff(), s.maxRetries), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		var calcErr *calculator.CalculationError
		return nil, &ServiceError{Permanent: errors.As(err, &calcErr), Err: err}
	}
	return out, nil
}

func newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	return b
}
