package storage

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen/corgi-bot/internal/domain"
	"github.com/jsamuelsen/corgi-bot/internal/platform/config"
	"github.com/jsamuelsen/corgi-bot/internal/ports"
)

// BreakerState is the position of a store breaker.
type BreakerState int

const (
	// BreakerClosed lets every call through.
	BreakerClosed BreakerState = iota

	// BreakerOpen fails every call without touching the backend.
	BreakerOpen

	// BreakerHalfOpen lets a few probe calls through after the cooldown.
	BreakerHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case BreakerClosed:
		return "closed"
	case BreakerOpen:
		return "open"
	case BreakerHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// outcome classifies a finished store call for the breaker.
type outcome int

const (
	outcomeSuccess outcome = iota
	outcomeFailure
	outcomeIgnored
)

// classify counts only backend trouble against the store. A missing quote or
// a bad argument is a healthy answer, and a caller that gave up says nothing
// about the backend.
func classify(err error) outcome {
	switch {
	case err == nil:
		return outcomeSuccess
	case errors.Is(err, context.Canceled):
		return outcomeIgnored
	case domain.IsUnavailable(err), errors.Is(err, context.DeadlineExceeded):
		return outcomeFailure
	default:
		return outcomeSuccess
	}
}

// breaker is a consecutive-failure circuit breaker.
//
//   - closed to open after maxFailures failures in a row
//   - open to half-open once cooldown has passed since the last failure
//   - half-open to closed after halfOpenLimit successful probes
//   - half-open to open on any failed probe
type breaker struct {
	mu        sync.Mutex
	state     BreakerState
	failures  int
	successes int
	probes    int
	openedAt  time.Time

	maxFailures   int
	cooldown      time.Duration
	halfOpenLimit int

	now      func() time.Time
	onChange func(from, to BreakerState)
}

func newBreaker(cfg config.BreakerConfig) *breaker {
	b := &breaker{
		maxFailures:   cfg.MaxFailures,
		cooldown:      cfg.Cooldown,
		halfOpenLimit: cfg.HalfOpenLimit,
		now:           time.Now,
	}

	if b.halfOpenLimit < 1 {
		b.halfOpenLimit = 1
	}

	return b
}

// allow reports whether a call may reach the backend and reserves a probe
// slot when half-open.
func (b *breaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerClosed:
		return true
	case BreakerOpen:
		if b.now().Sub(b.openedAt) < b.cooldown {
			return false
		}

		b.transition(BreakerHalfOpen)
		b.probes = 1

		return true
	case BreakerHalfOpen:
		if b.probes >= b.halfOpenLimit {
			return false
		}

		b.probes++

		return true
	default:
		return false
	}
}

func (b *breaker) record(o outcome) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == BreakerHalfOpen && b.probes > 0 {
		b.probes--
	}

	switch o {
	case outcomeSuccess:
		switch b.state {
		case BreakerClosed:
			b.failures = 0
		case BreakerHalfOpen:
			b.successes++
			if b.successes >= b.halfOpenLimit {
				b.transition(BreakerClosed)
			}
		}
	case outcomeFailure:
		switch b.state {
		case BreakerClosed:
			b.failures++
			if b.failures >= b.maxFailures {
				b.openedAt = b.now()
				b.transition(BreakerOpen)
			}
		case BreakerHalfOpen:
			b.openedAt = b.now()
			b.transition(BreakerOpen)
		}
	}
}

func (b *breaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.state
}

// transition must be called with mu held. onChange runs synchronously, so it
// must not call back into the breaker.
func (b *breaker) transition(to BreakerState) {
	if b.state == to {
		return
	}

	from := b.state
	b.state = to
	b.failures = 0
	b.successes = 0

	if to != BreakerHalfOpen {
		b.probes = 0
	}

	if b.onChange != nil {
		b.onChange(from, to)
	}
}

// WithBreaker fails store calls fast with a domain.UnavailableError while
// the backend keeps failing. A zero cfg.MaxFailures returns s as is. Health
// checks bypass the breaker so readiness keeps probing the real backend.
func WithBreaker(s ports.Store, cfg config.BreakerConfig, logger *slog.Logger) ports.Store {
	if cfg.MaxFailures <= 0 {
		return s
	}

	if logger == nil {
		logger = slog.Default()
	}

	b := newBreaker(cfg)
	name := s.Name()

	b.onChange = func(from, to BreakerState) {
		level := slog.LevelInfo
		if to == BreakerOpen {
			level = slog.LevelWarn
		}

		logger.Log(context.Background(), level, "store breaker state changed",
			slog.String("store", name),
			slog.String("from", from.String()),
			slog.String("to", to.String()),
		)
	}

	return &breakerStore{Store: s, breaker: b}
}

type breakerStore struct {
	ports.Store

	breaker *breaker
}

// guarded runs fn through the breaker.
func guarded[T any](s *breakerStore, fn func() (T, error)) (T, error) {
	if !s.breaker.allow() {
		var zero T
		return zero, domain.NewUnavailableError(s.Name(), "circuit open")
	}

	v, err := fn()
	s.breaker.record(classify(err))

	return v, err
}

func (s *breakerStore) PutQuote(ctx context.Context, q *domain.Quote) error {
	_, err := guarded(s, func() (struct{}, error) {
		return struct{}{}, s.Store.PutQuote(ctx, q)
	})

	return err
}

func (s *breakerStore) RandomQuote(ctx context.Context, communityID int64) (*domain.Quote, error) {
	return guarded(s, func() (*domain.Quote, error) {
		return s.Store.RandomQuote(ctx, communityID)
	})
}

func (s *breakerStore) GetScore(ctx context.Context, subjectID, communityID int64) (int64, error) {
	return guarded(s, func() (int64, error) {
		return s.Store.GetScore(ctx, subjectID, communityID)
	})
}

func (s *breakerStore) ApplyDelta(ctx context.Context, subjectID, communityID, delta int64, at time.Time) (int64, error) {
	return guarded(s, func() (int64, error) {
		return s.Store.ApplyDelta(ctx, subjectID, communityID, delta, at)
	})
}

func (s *breakerStore) MaxScore(ctx context.Context, communityID int64) (int64, error) {
	return guarded(s, func() (int64, error) {
		return s.Store.MaxScore(ctx, communityID)
	})
}

func (s *breakerStore) TopScores(ctx context.Context, communityID int64, n int) ([]domain.ScoreEntry, error) {
	return guarded(s, func() ([]domain.ScoreEntry, error) {
		return s.Store.TopScores(ctx, communityID, n)
	})
}

func (s *breakerStore) ResetScore(ctx context.Context, subjectID, communityID int64, at time.Time) error {
	_, err := guarded(s, func() (struct{}, error) {
		return struct{}{}, s.Store.ResetScore(ctx, subjectID, communityID, at)
	})

	return err
}
