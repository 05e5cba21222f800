// Package storage selects the persistence backend from configuration.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/corgi-bot/internal/adapters/storage/postgres"
	"github.com/jsamuelsen/corgi-bot/internal/adapters/storage/redis"
	"github.com/jsamuelsen/corgi-bot/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen/corgi-bot/internal/domain"
	"github.com/jsamuelsen/corgi-bot/internal/platform/config"
	"github.com/jsamuelsen/corgi-bot/internal/ports"
)

// Open connects the backend named by cfg.Driver. cfg.Timeout bounds the
// connection attempt and every later store call, and cfg.Breaker guards
// those calls once connected.
func Open(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (ports.Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	connectCtx := ctx

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc

		connectCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	var (
		store ports.Store
		err   error
	)

	switch cfg.Driver {
	case config.DriverSQLite, "":
		store, err = sqlite.Open(connectCtx, cfg.SQLite.Path)
	case config.DriverPostgres:
		store, err = postgres.Open(connectCtx, cfg.Postgres.DSN, logger)
	case config.DriverRedis:
		store, err = redis.Open(connectCtx, redis.Options{
			Addr:      cfg.Redis.Addr,
			Password:  cfg.Redis.Password,
			DB:        cfg.Redis.DB,
			KeyPrefix: cfg.Redis.KeyPrefix,
		}, nil)
	default:
		return nil, domain.NewValidationErrorWithValue("store.driver", "unknown driver", cfg.Driver)
	}

	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", cfg.Driver, err)
	}

	logger.Info("store opened", slog.String("driver", store.Name()))

	return WithBreaker(WithTimeout(store, cfg.Timeout), cfg.Breaker, logger), nil
}

// WithTimeout bounds every call on s by d. A non-positive d returns s as is.
func WithTimeout(s ports.Store, d time.Duration) ports.Store {
	if d <= 0 {
		return s
	}

	return &timeoutStore{Store: s, timeout: d}
}

type timeoutStore struct {
	ports.Store

	timeout time.Duration
}

func (s *timeoutStore) PutQuote(ctx context.Context, q *domain.Quote) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.Store.PutQuote(ctx, q)
}

func (s *timeoutStore) RandomQuote(ctx context.Context, communityID int64) (*domain.Quote, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.Store.RandomQuote(ctx, communityID)
}

func (s *timeoutStore) GetScore(ctx context.Context, subjectID, communityID int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.Store.GetScore(ctx, subjectID, communityID)
}

func (s *timeoutStore) ApplyDelta(ctx context.Context, subjectID, communityID, delta int64, at time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.Store.ApplyDelta(ctx, subjectID, communityID, delta, at)
}

func (s *timeoutStore) MaxScore(ctx context.Context, communityID int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.Store.MaxScore(ctx, communityID)
}

func (s *timeoutStore) TopScores(ctx context.Context, communityID int64, n int) ([]domain.ScoreEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.Store.TopScores(ctx, communityID, n)
}

func (s *timeoutStore) ResetScore(ctx context.Context, subjectID, communityID int64, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.Store.ResetScore(ctx, subjectID, communityID, at)
}
