// Package ports defines the contracts between the corgi's use cases and the
// infrastructure behind them.
//
// Every method takes a context first and reports failures as domain errors:
// domain.NotFoundError when nothing matches, domain.UnavailableError when the
// backing store cannot answer.
package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen/corgi-bot/internal/domain"
)

// QuoteStore persists quotes per community.
type QuoteStore interface {
	// PutQuote appends a quote. Quotes are never updated or deleted.
	PutQuote(ctx context.Context, quote *domain.Quote) error

	// RandomQuote returns one quote of the community, chosen uniformly.
	// Returns domain.ErrNotFound when the community has no quotes.
	RandomQuote(ctx context.Context, communityID int64) (*domain.Quote, error)
}

// AffectionStore persists affection scores keyed by (subject, community).
type AffectionStore interface {
	// GetScore returns the subject's score, or 0 when it has none.
	GetScore(ctx context.Context, subjectID, communityID int64) (int64, error)

	// ApplyDelta adds delta to the subject's score and returns the new score.
	// The record is created with delta as its score when absent. Concurrent
	// calls for the same key never lose updates.
	ApplyDelta(ctx context.Context, subjectID, communityID, delta int64, at time.Time) (int64, error)

	// MaxScore returns the highest score in the community, or 0 when empty.
	MaxScore(ctx context.Context, communityID int64) (int64, error)

	// TopScores returns at most n entries ordered by score descending,
	// ties broken by subject id ascending.
	TopScores(ctx context.Context, communityID int64, n int) ([]domain.ScoreEntry, error)

	// ResetScore sets the subject's score to 0.
	ResetScore(ctx context.Context, subjectID, communityID int64, at time.Time) error
}

// Store is a backend holding both tables. Backends report their own health.
type Store interface {
	QuoteStore
	AffectionStore
	HealthChecker

	// Close releases the backend's connections.
	Close() error
}

// Recorder counts personality events for observability.
type Recorder interface {
	Trigger(kind domain.TriggerKind)
	Action(kind domain.ActionKind, tone domain.Tone)
	Apology(outcome domain.ApologyOutcome)
	QuoteStored()
	AmbientFired()
}

// NopRecorder discards every event.
type NopRecorder struct{}

func (NopRecorder) Trigger(domain.TriggerKind)            {}
func (NopRecorder) Action(domain.ActionKind, domain.Tone) {}
func (NopRecorder) Apology(domain.ApologyOutcome)         {}
func (NopRecorder) QuoteStored()                          {}
func (NopRecorder) AmbientFired()                         {}
