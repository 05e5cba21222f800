package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/corgi-bot/internal/domain"
	"github.com/jsamuelsen/corgi-bot/internal/platform/logging"
	"github.com/jsamuelsen/corgi-bot/internal/ports"
	"github.com/jsamuelsen/corgi-bot/internal/responses"
)

// QuoteService stores and recalls what community members said.
type QuoteService struct {
	store    ports.QuoteStore
	recorder ports.Recorder
	now      func() time.Time
	location *time.Location
	logger   *slog.Logger
}

// QuoteServiceConfig contains the dependencies of the quote service.
type QuoteServiceConfig struct {
	Store    ports.QuoteStore
	Recorder ports.Recorder
	Clock    func() time.Time

	// Location is the zone quotes are displayed in. Defaults to time.Local.
	Location *time.Location

	Logger *slog.Logger
}

// NewQuoteService creates the service. It panics without a store.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Store == nil {
		panic("app: quote service requires a quote store")
	}

	svc := &QuoteService{
		store:    cfg.Store,
		recorder: cfg.Recorder,
		now:      cfg.Clock,
		location: cfg.Location,
		logger:   cfg.Logger,
	}

	if svc.recorder == nil {
		svc.recorder = ports.NopRecorder{}
	}

	if svc.now == nil {
		svc.now = time.Now
	}

	if svc.location == nil {
		svc.location = time.Local
	}

	if svc.logger == nil {
		svc.logger = slog.Default()
	}

	svc.logger = svc.logger.With(slog.String("component", "app.QuoteService"))

	return svc
}

// Location is the zone quotes are displayed in.
func (s *QuoteService) Location() *time.Location {
	return s.location
}

// Store records a quote and returns it with a confirmation line.
func (s *QuoteService) Store(ctx context.Context, communityID int64, text, author string) (*domain.Quote, string, error) {
	quote, err := domain.NewQuote(text, author, communityID, s.now())
	if err != nil {
		return nil, "", err
	}

	_, err = traced(ctx, "store.PutQuote", communityID, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.store.PutQuote(ctx, quote)
	})
	if err != nil {
		logging.FromContextOr(ctx, s.logger).ErrorContext(ctx, "failed to store quote",
			slog.Int64("community_id", communityID),
			slog.Any("error", err),
		)

		return nil, "", fmt.Errorf("storing quote: %w", err)
	}

	s.recorder.QuoteStored()

	logging.FromContextOr(ctx, s.logger).InfoContext(ctx, "stored quote",
		slog.Int64("community_id", communityID),
		slog.String("author", quote.Author),
	)

	return quote, responses.QuoteStored(quote, s.location), nil
}

// Recall returns a random quote of the community. It fails with
// domain.ErrNotFound when nothing has been stored yet.
func (s *QuoteService) Recall(ctx context.Context, communityID int64) (*domain.Quote, error) {
	quote, err := traced(ctx, "store.RandomQuote", communityID, func(ctx context.Context) (*domain.Quote, error) {
		return s.store.RandomQuote(ctx, communityID)
	})
	if err != nil {
		return nil, fmt.Errorf("recalling quote: %w", err)
	}

	return quote, nil
}

// RecallMessage returns a random quote and its display line. An empty
// community gets a friendly line and a nil quote instead of an error.
func (s *QuoteService) RecallMessage(ctx context.Context, communityID int64) (*domain.Quote, string, error) {
	quote, err := s.Recall(ctx, communityID)
	if domain.IsNotFound(err) {
		return nil, responses.NoQuotes, nil
	}

	if err != nil {
		return nil, "", err
	}

	return quote, quote.Display(s.location), nil
}
