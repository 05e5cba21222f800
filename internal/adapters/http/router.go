package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/corgi-bot/internal/adapters/http/dto"
	"github.com/jsamuelsen/corgi-bot/internal/adapters/http/handlers"
	"github.com/jsamuelsen/corgi-bot/internal/adapters/http/middleware"
	"github.com/jsamuelsen/corgi-bot/internal/platform/config"
	"github.com/jsamuelsen/corgi-bot/internal/platform/telemetry"
)

// DefaultRequestTimeout bounds API requests when the config leaves it unset.
const DefaultRequestTimeout = 5 * time.Second

// RouterConfig contains what SetupRouter mounts.
type RouterConfig struct {
	Logger      *slog.Logger
	ServiceName string

	HealthHandler      *handlers.HealthHandler
	PersonalityHandler *handlers.PersonalityHandler
	QuoteHandler       *handlers.QuoteHandler

	// Timeout is the deadline of each API request. Zero disables it.
	Timeout time.Duration

	// MaxBodySize caps API request bodies in bytes. Zero disables it.
	MaxBodySize int64
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Global middleware, first to last:
//  1. Recovery
//  2. Context logger, request ID, correlation ID
//  3. OpenTelemetry tracing and request metrics
//  4. Logging (skips /-/)
//
// Routes:
//   - /-/ health, build info and metrics
//   - /api/v1/ speak, hello and roll
//   - /api/v1/communities/:communityID/ everything that reads or writes the store
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(),
		middleware.ContextLogger(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)

	if cfg.ServiceName != "" {
		engine.Use(telemetry.TracingMiddleware(cfg.ServiceName))
	}

	engine.Use(
		telemetry.Instrument(),
		middleware.Logging(),
	)

	engine.NoRoute(func(c *gin.Context) {
		dto.AbortWithCode(c, dto.ErrorCodeNotFound, "route not found")
	})

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	apiV1 := engine.Group("/api/v1", middleware.Timeout(cfg.Timeout), middleware.BodyLimit(cfg.MaxBodySize))

	if cfg.PersonalityHandler != nil {
		cfg.PersonalityHandler.RegisterRoutes(apiV1)
	}

	communities := apiV1.Group("/communities/:communityID", middleware.Community())

	if cfg.PersonalityHandler != nil {
		cfg.PersonalityHandler.RegisterCommunityRoutes(communities)
	}

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(communities)
	}
}

// SetupMinimalRouter mounts only the health endpoints.
func SetupMinimalRouter(engine *gin.Engine, logger *slog.Logger, healthHandler *handlers.HealthHandler) {
	engine.Use(
		middleware.Recovery(),
		middleware.ContextLogger(logger),
		middleware.RequestID(),
	)

	if healthHandler != nil {
		healthHandler.RegisterHealthRoutesOnEngine(engine)
	}
}

// NewRouterConfig builds a RouterConfig from the loaded configuration.
func NewRouterConfig(
	cfg *config.Config,
	logger *slog.Logger,
	health *handlers.HealthHandler,
	personality *handlers.PersonalityHandler,
	quotes *handlers.QuoteHandler,
) RouterConfig {
	timeout := cfg.Server.RequestTimeout
	if timeout == 0 {
		timeout = DefaultRequestTimeout
	}

	serviceName := ""
	if cfg.Telemetry.Enabled {
		serviceName = cfg.Telemetry.ServiceName
	}

	return RouterConfig{
		Logger:             logger,
		ServiceName:        serviceName,
		HealthHandler:      health,
		PersonalityHandler: personality,
		QuoteHandler:       quotes,
		Timeout:            timeout,
		MaxBodySize:        cfg.Server.MaxRequestSize,
	}
}
