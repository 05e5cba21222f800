package storage

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/corgi-bot/internal/domain"
	"github.com/jsamuelsen/corgi-bot/internal/mocks"
	"github.com/jsamuelsen/corgi-bot/internal/platform/config"
)

// fakeClock is a settable breaker clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func newTestBreaker(maxFailures, halfOpenLimit int) (*breaker, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)}

	b := newBreaker(config.BreakerConfig{
		MaxFailures:   maxFailures,
		Cooldown:      10 * time.Second,
		HalfOpenLimit: halfOpenLimit,
	})
	b.now = clock.Now

	return b, clock
}

var errDown = domain.WrapUnavailable("stub", "query", errors.New("connection refused"))

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want outcome
	}{
		{"nil", nil, outcomeSuccess},
		{"unavailable", errDown, outcomeFailure},
		{"deadline", context.DeadlineExceeded, outcomeFailure},
		{"wrapped deadline", domain.WrapUnavailable("stub", "query", context.DeadlineExceeded), outcomeFailure},
		{"canceled", context.Canceled, outcomeIgnored},
		{"canceled while unavailable", domain.WrapUnavailable("stub", "query", context.Canceled), outcomeIgnored},
		{"not found", domain.NewNotFoundError("quote", 1), outcomeSuccess},
		{"validation", domain.NewValidationError("text", "empty"), outcomeSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.err))
		})
	}
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	b, _ := newTestBreaker(3, 1)

	for range 2 {
		require.True(t, b.allow())
		b.record(outcomeFailure)
	}

	assert.Equal(t, BreakerClosed, b.State())

	require.True(t, b.allow())
	b.record(outcomeFailure)

	assert.Equal(t, BreakerOpen, b.State())
	assert.False(t, b.allow())
}

func TestBreaker_SuccessResetsFailures(t *testing.T) {
	b, _ := newTestBreaker(3, 1)

	b.record(outcomeFailure)
	b.record(outcomeFailure)
	b.record(outcomeSuccess)
	b.record(outcomeFailure)
	b.record(outcomeFailure)

	assert.Equal(t, BreakerClosed, b.State())
}

func TestBreaker_IgnoredOutcomesDoNotCount(t *testing.T) {
	b, _ := newTestBreaker(2, 1)

	b.record(outcomeFailure)
	b.record(outcomeIgnored)
	b.record(outcomeIgnored)

	assert.Equal(t, BreakerClosed, b.State())

	b.record(outcomeFailure)
	assert.Equal(t, BreakerOpen, b.State())
}

func TestBreaker_HalfOpenRecovery(t *testing.T) {
	b, clock := newTestBreaker(1, 2)

	b.record(outcomeFailure)
	require.Equal(t, BreakerOpen, b.State())

	clock.Advance(9 * time.Second)
	assert.False(t, b.allow(), "still cooling down")

	clock.Advance(time.Second)
	require.True(t, b.allow())
	assert.Equal(t, BreakerHalfOpen, b.State())

	require.True(t, b.allow(), "second probe slot")
	assert.False(t, b.allow(), "probe slots exhausted")

	b.record(outcomeSuccess)
	assert.Equal(t, BreakerHalfOpen, b.State())

	b.record(outcomeSuccess)
	assert.Equal(t, BreakerClosed, b.State())
	assert.True(t, b.allow())
}

func TestBreaker_HalfOpenFailureReopens(t *testing.T) {
	b, clock := newTestBreaker(1, 1)

	b.record(outcomeFailure)
	clock.Advance(10 * time.Second)

	require.True(t, b.allow())
	b.record(outcomeFailure)

	assert.Equal(t, BreakerOpen, b.State())
	assert.False(t, b.allow(), "cooldown restarts from the failed probe")

	clock.Advance(10 * time.Second)
	assert.True(t, b.allow())
}

func TestBreaker_StateChangeCallback(t *testing.T) {
	b, clock := newTestBreaker(1, 1)

	var changes []string
	b.onChange = func(from, to BreakerState) {
		changes = append(changes, from.String()+">"+to.String())
	}

	b.record(outcomeFailure)
	clock.Advance(10 * time.Second)
	b.allow()
	b.record(outcomeSuccess)

	assert.Equal(t, []string{"closed>open", "open>half-open", "half-open>closed"}, changes)
}

func TestBreakerState_String(t *testing.T) {
	assert.Equal(t, "closed", BreakerClosed.String())
	assert.Equal(t, "open", BreakerOpen.String())
	assert.Equal(t, "half-open", BreakerHalfOpen.String())
	assert.Equal(t, "unknown", BreakerState(9).String())
}

func TestWithBreaker(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled returns the store", func(t *testing.T) {
		inner := mocks.NewMockStore(t)
		assert.Same(t, inner, WithBreaker(inner, config.BreakerConfig{}, nil))
	})

	t.Run("fails fast once open", func(t *testing.T) {
		inner := mocks.NewMockStore(t)
		inner.EXPECT().Name().Return("stub").Maybe()
		inner.EXPECT().GetScore(mock.Anything, int64(1), int64(2)).Return(0, errDown).Twice()

		s := WithBreaker(inner, config.BreakerConfig{MaxFailures: 2, Cooldown: time.Minute}, nil)

		for range 2 {
			_, err := s.GetScore(ctx, 1, 2)
			require.ErrorIs(t, err, errDown)
		}

		_, err := s.GetScore(ctx, 1, 2)
		require.Error(t, err)
		assert.True(t, domain.IsUnavailable(err))
		assert.Contains(t, err.Error(), "circuit open")

		err = s.PutQuote(ctx, &domain.Quote{Text: "woof", CommunityID: 2})
		assert.True(t, domain.IsUnavailable(err), "every call shares the breaker")
	})

	t.Run("not found keeps the breaker closed", func(t *testing.T) {
		inner := mocks.NewMockStore(t)
		inner.EXPECT().Name().Return("stub").Maybe()
		inner.EXPECT().RandomQuote(mock.Anything, int64(4)).Return(nil, domain.NewNotFoundError("quote", 4)).Times(3)

		s := WithBreaker(inner, config.BreakerConfig{MaxFailures: 1, Cooldown: time.Minute}, nil)

		for range 3 {
			_, err := s.RandomQuote(ctx, 4)
			assert.True(t, domain.IsNotFound(err))
		}
	})

	t.Run("health checks bypass the breaker", func(t *testing.T) {
		inner := mocks.NewMockStore(t)
		inner.EXPECT().Name().Return("stub").Maybe()
		inner.EXPECT().ResetScore(mock.Anything, int64(1), int64(2), mock.Anything).Return(errDown).Once()
		inner.EXPECT().Check(mock.Anything).Return(nil).Once()

		s := WithBreaker(inner, config.BreakerConfig{MaxFailures: 1, Cooldown: time.Minute}, nil)

		require.Error(t, s.ResetScore(ctx, 1, 2, time.Now()))
		assert.NoError(t, s.Check(ctx))
	})

	t.Run("passes values through", func(t *testing.T) {
		inner := mocks.NewMockStore(t)
		inner.EXPECT().Name().Return("stub").Maybe()
		inner.EXPECT().ApplyDelta(mock.Anything, int64(1), int64(2), int64(3), mock.Anything).Return(int64(8), nil)
		inner.EXPECT().MaxScore(mock.Anything, int64(2)).Return(int64(8), nil)
		inner.EXPECT().TopScores(mock.Anything, int64(2), 1).Return([]domain.ScoreEntry{{SubjectID: 1, Score: 8}}, nil)

		s := WithBreaker(inner, config.BreakerConfig{MaxFailures: 1, Cooldown: time.Minute}, nil)

		score, err := s.ApplyDelta(ctx, 1, 2, 3, time.Now())
		require.NoError(t, err)
		assert.Equal(t, int64(8), score)

		maxScore, err := s.MaxScore(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(8), maxScore)

		top, err := s.TopScores(ctx, 2, 1)
		require.NoError(t, err)
		assert.Equal(t, []domain.ScoreEntry{{SubjectID: 1, Score: 8}}, top)
	})
}
