// Command corgibot serves the corgi personality over HTTP to a chat host.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/jsamuelsen/corgi-bot/internal/adapters/http"
	"github.com/jsamuelsen/corgi-bot/internal/adapters/http/handlers"
	"github.com/jsamuelsen/corgi-bot/internal/adapters/storage"
	"github.com/jsamuelsen/corgi-bot/internal/app"
	"github.com/jsamuelsen/corgi-bot/internal/domain"
	"github.com/jsamuelsen/corgi-bot/internal/platform/config"
	"github.com/jsamuelsen/corgi-bot/internal/platform/logging"
	"github.com/jsamuelsen/corgi-bot/internal/platform/metrics"
	"github.com/jsamuelsen/corgi-bot/internal/platform/telemetry"
	"github.com/jsamuelsen/corgi-bot/internal/ports"
)

// Set with -ldflags "-X main.Version=... -X main.Commit=... -X main.BuildTime=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "corgibot: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// A local .env is optional. Variables already set win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := logging.New(loggingConfig(cfg))
	slog.SetDefault(logger)

	logger.Info("corgi waking up",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("store", cfg.Store.Driver),
	)

	tel, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("starting telemetry: %w", err)
	}
	defer closeLogged(logger, "telemetry", func() error { return tel.Shutdown(ctx) })

	store, err := storage.Open(ctx, cfg.Store, logger)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer closeLogged(logger, "store", store.Close)

	server, err := buildServer(cfg, logger, store)
	if err != nil {
		return err
	}

	serverErr, err := server.Start()
	if err != nil {
		return fmt.Errorf("starting server: %w", err)
	}

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// loadConfig reads the profile named by APP_ENVIRONMENT, local by default.
func loadConfig() (*config.Config, error) {
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loggingConfig(cfg *config.Config) *logging.Config {
	f := cfg.Log.File

	return &logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    f.Enabled,
			Path:       f.Path,
			MaxSizeMB:  f.MaxSizeMB,
			MaxBackups: f.MaxBackups,
			MaxAgeDays: f.MaxAgeDays,
			Compress:   f.Compress,
		},
	}
}

// buildServer wires the services over store and mounts them on a server.
func buildServer(cfg *config.Config, logger *slog.Logger, store ports.Store) (*http.Server, error) {
	health := ports.NewHealthRegistry()
	health.CheckTimeout = cfg.Store.Timeout

	if err := health.Register(store); err != nil {
		return nil, fmt.Errorf("registering store health check: %w", err)
	}

	recorder, err := metrics.NewRecorder(nil)
	if err != nil {
		return nil, fmt.Errorf("registering metrics: %w", err)
	}

	p := cfg.Personality

	personality := app.NewPersonalityService(app.PersonalityServiceConfig{
		Store:    store,
		Recorder: recorder,
		Ambient: &domain.AmbientParams{
			Probability: p.Ambient.Probability,
			Divisor:     p.Ambient.Divisor,
			Offset:      p.Ambient.Offset,
		},
		LeaderboardDefault: p.Leaderboard.DefaultSize,
		LeaderboardMax:     p.Leaderboard.MaxSize,
		Logger:             logger,
	})

	quotes := app.NewQuoteService(app.QuoteServiceConfig{
		Store:    store,
		Recorder: recorder,
		Location: p.Quotes.Location(),
		Logger:   logger,
	})

	server := http.New(&cfg.Server, logger)
	http.SetupRouter(server.Engine(), http.NewRouterConfig(cfg, logger,
		handlers.NewHealthHandler(health, handlers.NewBuildInfo(Version, Commit, BuildTime)),
		handlers.NewPersonalityHandler(personality),
		handlers.NewQuoteHandler(quotes),
	))

	return server, nil
}

func closeLogged(logger *slog.Logger, what string, closeFn func() error) {
	if err := closeFn(); err != nil {
		logger.Error("closing "+what, slog.Any("error", err))
	}
}

// waitForShutdown blocks until SIGINT, SIGTERM or a serve failure, then
// drains in-flight requests. The store is closed by the caller afterwards,
// so no handler ever sees it closed.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	timeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		logger.Info("shutdown signal", slog.String("signal", sig.String()), slog.Duration("timeout", timeout))
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return err
	}

	logger.Info("corgi asleep")

	return nil
}
