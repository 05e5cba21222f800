package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/corgi-bot/internal/domain"
	"github.com/jsamuelsen/corgi-bot/internal/mocks"
	"github.com/jsamuelsen/corgi-bot/internal/responses"
)

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var fixedNow = time.Date(2024, time.January, 5, 13, 4, 5, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newTestQuoteService(t *testing.T, store *mocks.MockStore, rec *mocks.MockRecorder) *QuoteService {
	t.Helper()

	cfg := QuoteServiceConfig{
		Store:    store,
		Clock:    fixedClock,
		Location: time.UTC,
		Logger:   discardLogger(),
	}
	if rec != nil {
		cfg.Recorder = rec
	}

	return NewQuoteService(cfg)
}

func TestNewQuoteService_PanicsWithoutStore(t *testing.T) {
	assert.Panics(t, func() {
		NewQuoteService(QuoteServiceConfig{Logger: slog.Default()})
	})
}

func TestNewQuoteService_Defaults(t *testing.T) {
	svc := NewQuoteService(QuoteServiceConfig{Store: mocks.NewMockStore(t)})

	require.NotNil(t, svc)
	assert.Equal(t, time.Local, svc.Location())
}

func TestQuoteService_Store(t *testing.T) {
	t.Run("stores and confirms", func(t *testing.T) {
		store := mocks.NewMockStore(t)
		rec := mocks.NewMockRecorder(t)

		store.EXPECT().PutQuote(mock.Anything, mock.MatchedBy(func(q *domain.Quote) bool {
			return q.Text == "hello" && q.Author == "alice" && q.CommunityID == 1 && q.RecordedAt.Equal(fixedNow)
		})).Return(nil)
		rec.EXPECT().QuoteStored().Return()

		svc := newTestQuoteService(t, store, rec)

		quote, msg, err := svc.Store(context.Background(), 1, "hello", "alice")

		require.NoError(t, err)
		assert.Equal(t, "hello", quote.Text)
		assert.Equal(t, "Stored quote!\nTime: January 05, 2024 13:04:05, Author: alice, Quote: hello", msg)
	})

	t.Run("rejects empty text without touching the store", func(t *testing.T) {
		svc := newTestQuoteService(t, mocks.NewMockStore(t), nil)

		_, _, err := svc.Store(context.Background(), 1, "  ", "alice")

		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("propagates unavailable store", func(t *testing.T) {
		store := mocks.NewMockStore(t)
		store.EXPECT().PutQuote(mock.Anything, mock.Anything).
			Return(domain.NewUnavailableError("sqlite", "disk I/O error"))

		svc := newTestQuoteService(t, store, nil)

		_, _, err := svc.Store(context.Background(), 1, "hello", "")

		require.Error(t, err)
		assert.True(t, domain.IsUnavailable(err))
	})
}

func TestQuoteService_Recall(t *testing.T) {
	stored := &domain.Quote{Text: "hello", Author: "alice", RecordedAt: fixedNow, CommunityID: 1}

	tests := []struct {
		name      string
		setupMock func(*mocks.MockStore)
		expected  *domain.Quote
		errCheck  func(error) bool
	}{
		{
			name: "returns the stored quote",
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().RandomQuote(mock.Anything, int64(1)).Return(stored, nil)
			},
			expected: stored,
		},
		{
			name: "empty community is not found",
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().RandomQuote(mock.Anything, int64(1)).Return(nil, domain.NewNotFoundError("quote", 1))
			},
			errCheck: domain.IsNotFound,
		},
		{
			name: "store failure propagates",
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().RandomQuote(mock.Anything, int64(1)).Return(nil, errors.New("boom"))
			},
			errCheck: func(err error) bool { return err != nil && !domain.IsNotFound(err) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockStore(t)
			tt.setupMock(store)

			svc := newTestQuoteService(t, store, nil)

			quote, err := svc.Recall(context.Background(), 1)

			if tt.errCheck != nil {
				require.Error(t, err)
				assert.True(t, tt.errCheck(err))
				assert.Nil(t, quote)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, quote)
		})
	}
}

func TestQuoteService_RecallMessage(t *testing.T) {
	t.Run("formats the quote", func(t *testing.T) {
		store := mocks.NewMockStore(t)
		store.EXPECT().RandomQuote(mock.Anything, int64(3)).
			Return(&domain.Quote{Text: "hello", Author: "alice", RecordedAt: fixedNow, CommunityID: 3}, nil)

		quote, msg, err := newTestQuoteService(t, store, nil).RecallMessage(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, "alice", quote.Author)
		assert.Equal(t, `January 05, 2024 13:04:05: alice said, "hello"`, msg)
	})

	t.Run("empty community recovers", func(t *testing.T) {
		store := mocks.NewMockStore(t)
		store.EXPECT().RandomQuote(mock.Anything, int64(3)).Return(nil, domain.NewNotFoundError("quote", 3))

		quote, msg, err := newTestQuoteService(t, store, nil).RecallMessage(context.Background(), 3)

		require.NoError(t, err)
		assert.Nil(t, quote)
		assert.Equal(t, responses.NoQuotes, msg)
	})

	t.Run("unavailable is not recovered", func(t *testing.T) {
		store := mocks.NewMockStore(t)
		store.EXPECT().RandomQuote(mock.Anything, int64(3)).
			Return(nil, domain.NewUnavailableError("redis", "connection refused"))

		_, _, err := newTestQuoteService(t, store, nil).RecallMessage(context.Background(), 3)

		assert.True(t, domain.IsUnavailable(err))
	})
}
