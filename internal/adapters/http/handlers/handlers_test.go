package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/corgi-bot/internal/adapters/http/dto"
	"github.com/jsamuelsen/corgi-bot/internal/adapters/http/middleware"
	"github.com/jsamuelsen/corgi-bot/internal/app"
	"github.com/jsamuelsen/corgi-bot/internal/domain"
	"github.com/jsamuelsen/corgi-bot/internal/mocks"
)

const (
	community int64 = 7
	subject   int64 = 42
)

var fixedNow = time.Date(2024, time.January, 5, 13, 4, 5, 0, time.UTC)

// stubRand always draws the same values.
type stubRand struct {
	float float64
}

func (r stubRand) Float64() float64 { return r.float }
func (stubRand) IntN(int) int       { return 0 }
func (stubRand) Int64N(int64) int64 { return 0 }

type testDeps struct {
	store   *mocks.MockStore
	rng     domain.Rand
	ambient *domain.AmbientParams
}

// newTestRouter mounts the handlers the way the router does, on services
// backed by a mock store.
func newTestRouter(t *testing.T, deps testDeps) *gin.Engine {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if deps.store == nil {
		deps.store = mocks.NewMockStore(t)
	}

	if deps.rng == nil {
		deps.rng = stubRand{}
	}

	personality := app.NewPersonalityService(app.PersonalityServiceConfig{
		Store:   deps.store,
		Rand:    deps.rng,
		Clock:   func() time.Time { return fixedNow },
		Ambient: deps.ambient,
		Logger:  logger,
	})

	quotes := app.NewQuoteService(app.QuoteServiceConfig{
		Store:    deps.store,
		Clock:    func() time.Time { return fixedNow },
		Location: time.UTC,
		Logger:   logger,
	})

	router := gin.New()

	api := router.Group("/api/v1")
	ph := NewPersonalityHandler(personality)
	ph.RegisterRoutes(api)

	communities := api.Group("/communities/:communityID", middleware.Community())
	ph.RegisterCommunityRoutes(communities)
	NewQuoteHandler(quotes).RegisterQuoteRoutes(communities)

	return router
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)

		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())

	return v
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	return decode[dto.ErrorResponse](t, w)
}
