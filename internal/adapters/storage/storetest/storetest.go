// Package storetest is the conformance suite every store backend must pass.
package storetest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/corgi-bot/internal/domain"
	"github.com/jsamuelsen/corgi-bot/internal/ports"
)

// Factory returns an empty store. It should register its own cleanup.
type Factory func(t *testing.T) ports.Store

var at = time.Date(2024, time.January, 5, 13, 4, 5, 0, time.UTC)

// Run exercises the full store contract against fresh stores from newStore.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	t.Run("health check passes", func(t *testing.T) {
		s := newStore(t)
		assert.NotEmpty(t, s.Name())
		require.NoError(t, s.Check(context.Background()))
	})

	t.Run("score lifecycle", func(t *testing.T) { testScoreLifecycle(t, newStore(t)) })
	t.Run("deltas commute", func(t *testing.T) { testDeltasCommute(t, newStore(t)) })
	t.Run("concurrent deltas are not lost", func(t *testing.T) { testConcurrentDeltas(t, newStore(t)) })
	t.Run("max score", func(t *testing.T) { testMaxScore(t, newStore(t)) })
	t.Run("top scores", func(t *testing.T) { testTopScores(t, newStore(t)) })
	t.Run("communities are isolated", func(t *testing.T) { testIsolation(t, newStore(t)) })
	t.Run("quote round trip", func(t *testing.T) { testQuoteRoundTrip(t, newStore(t)) })
	t.Run("random quote covers all quotes", func(t *testing.T) { testRandomQuoteCoverage(t, newStore(t)) })
}

func testScoreLifecycle(t *testing.T, s ports.Store) {
	ctx := context.Background()

	score, err := s.GetScore(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), score)

	score, err = s.ApplyDelta(ctx, 1, 1, 5, at)
	require.NoError(t, err)
	assert.Equal(t, int64(5), score)

	score, err = s.ApplyDelta(ctx, 1, 1, -8, at)
	require.NoError(t, err)
	assert.Equal(t, int64(-3), score)

	score, err = s.GetScore(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(-3), score)

	require.NoError(t, s.ResetScore(ctx, 1, 1, at))

	score, err = s.GetScore(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), score)

	require.NoError(t, s.ResetScore(ctx, 99, 1, at))

	score, err = s.GetScore(ctx, 99, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), score)
}

func testDeltasCommute(t *testing.T, s ports.Store) {
	ctx := context.Background()

	orders := [][]int64{{3, -1, 5}, {5, 3, -1}, {-1, 5, 3}}

	for i, deltas := range orders {
		subject := int64(i + 1)
		for _, d := range deltas {
			_, err := s.ApplyDelta(ctx, subject, 7, d, at)
			require.NoError(t, err)
		}

		score, err := s.GetScore(ctx, subject, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), score, "order %v", deltas)
	}
}

func testConcurrentDeltas(t *testing.T, s ports.Store) {
	ctx := context.Background()

	const workers = 50

	var wg sync.WaitGroup

	errs := make(chan error, workers)

	for range workers {
		wg.Go(func() {
			if _, err := s.ApplyDelta(ctx, 1, 1, 1, at); err != nil {
				errs <- err
			}
		})
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	score, err := s.GetScore(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(workers), score)
}

func testMaxScore(t *testing.T, s ports.Store) {
	ctx := context.Background()

	maxScore, err := s.MaxScore(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), maxScore)

	_, err = s.ApplyDelta(ctx, 1, 1, -3, at)
	require.NoError(t, err)
	_, err = s.ApplyDelta(ctx, 2, 1, -7, at)
	require.NoError(t, err)

	maxScore, err = s.MaxScore(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(-3), maxScore)

	_, err = s.ApplyDelta(ctx, 3, 1, 12, at)
	require.NoError(t, err)

	maxScore, err = s.MaxScore(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(12), maxScore)
}

func testTopScores(t *testing.T, s ports.Store) {
	ctx := context.Background()

	const a, b, c, d = 1, 2, 3, 4

	seed := map[int64]int64{a: 5, b: 9, c: 1, d: 9}
	for subject, score := range seed {
		_, err := s.ApplyDelta(ctx, subject, 1, score, at)
		require.NoError(t, err)
	}

	top, err := s.TopScores(ctx, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []domain.ScoreEntry{
		{SubjectID: b, Score: 9},
		{SubjectID: d, Score: 9},
		{SubjectID: a, Score: 5},
	}, top)

	top, err = s.TopScores(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, top, 4)
	assert.Equal(t, domain.ScoreEntry{SubjectID: c, Score: 1}, top[3])

	top, err = s.TopScores(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []domain.ScoreEntry{{SubjectID: b, Score: 9}, {SubjectID: d, Score: 9}}, top)

	top, err = s.TopScores(ctx, 2, 3)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func testIsolation(t *testing.T, s ports.Store) {
	ctx := context.Background()

	_, err := s.ApplyDelta(ctx, 1, 1, 40, at)
	require.NoError(t, err)
	require.NoError(t, s.PutQuote(ctx, &domain.Quote{Text: "only here", RecordedAt: at, CommunityID: 1}))

	score, err := s.GetScore(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), score)

	maxScore, err := s.MaxScore(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), maxScore)

	top, err := s.TopScores(ctx, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, top)

	_, err = s.RandomQuote(ctx, 2)
	assert.True(t, domain.IsNotFound(err))
}

func testQuoteRoundTrip(t *testing.T, s ports.Store) {
	ctx := context.Background()

	_, err := s.RandomQuote(ctx, 1)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))

	require.NoError(t, s.PutQuote(ctx, &domain.Quote{Text: "hello", Author: "alice", RecordedAt: at, CommunityID: 1}))

	for range 5 {
		q, err := s.RandomQuote(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "hello", q.Text)
		assert.Equal(t, "alice", q.Author)
		assert.Equal(t, int64(1), q.CommunityID)
		assert.True(t, at.Equal(q.RecordedAt), "recorded at %v", q.RecordedAt)
	}
}

func testRandomQuoteCoverage(t *testing.T, s ports.Store) {
	ctx := context.Background()

	texts := []string{"arf", "bark", "woof"}
	for _, text := range texts {
		require.NoError(t, s.PutQuote(ctx, &domain.Quote{Text: text, RecordedAt: at, CommunityID: 5}))
	}

	seen := make(map[string]int)

	for range 200 {
		q, err := s.RandomQuote(ctx, 5)
		require.NoError(t, err)

		seen[q.Text]++
	}

	assert.Len(t, seen, len(texts))
}
