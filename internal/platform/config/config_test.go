package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "corgi-bot", cfg.App.Name)
	assert.Equal(t, "dev", cfg.App.Version)
	assert.Equal(t, "local", cfg.App.Environment)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, DefaultSQLitePath, cfg.Store.SQLite.Path)

	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvVarOverrides(t *testing.T) {
	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "warn")
	t.Setenv("APP_STORE_DRIVER", "redis")
	t.Setenv("APP_STORE_REDIS_KEY__PREFIX", "pup")
	t.Setenv("APP_PERSONALITY_AMBIENT_PROBABILITY", "0.5")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, DriverRedis, cfg.Store.Driver)
	assert.Equal(t, "pup", cfg.Store.Redis.KeyPrefix)
	assert.InDelta(t, 0.5, cfg.Personality.Ambient.Probability, 1e-9)
}

func TestLoad_DurationParsing(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.Store.Timeout)
	assert.Equal(t, 10*time.Second, cfg.Store.Breaker.Cooldown)
}

func TestLoad_NonExistentProfile(t *testing.T) {
	cfg, err := Load("nonexistent")
	require.NoError(t, err)

	assert.Equal(t, "corgi-bot", cfg.App.Name)
}

func TestLoad_ProfileFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "test.yaml"), []byte(`
store:
  driver: sqlite
  sqlite:
    path: ":memory:"
personality:
  leaderboard:
    default_size: 5
  quotes:
    timezone: UTC
`), 0o600))

	t.Chdir(dir)

	cfg, err := Load("test")
	require.NoError(t, err)

	assert.Equal(t, ":memory:", cfg.Store.SQLite.Path)
	assert.Equal(t, 5, cfg.Personality.Leaderboard.DefaultSize)
	assert.Equal(t, MaxLeaderboardSize, cfg.Personality.Leaderboard.MaxSize)
	assert.Equal(t, time.UTC, cfg.Personality.Quotes.Location())
}

func TestLoad_BoolEnvVar(t *testing.T) {
	t.Setenv("APP_TELEMETRY_ENABLED", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.Telemetry.Enabled)
}

func TestLoad_LogFileDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Log.File.Enabled)
	assert.Equal(t, "./logs/corgibot.log", cfg.Log.File.Path)
	assert.Equal(t, DefaultLogFileMaxSizeMB, cfg.Log.File.MaxSizeMB)
	assert.Equal(t, DefaultLogFileMaxBackups, cfg.Log.File.MaxBackups)
	assert.Equal(t, DefaultLogFileMaxAgeDays, cfg.Log.File.MaxAgeDays)
	assert.True(t, cfg.Log.File.Compress)
}

func TestLoad_TelemetryDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "corgi-bot", cfg.Telemetry.ServiceName)
	assert.InDelta(t, 1.0, cfg.Telemetry.SamplingRate, 0)
}

func TestLoad_PersonalityDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	p := cfg.Personality
	assert.InDelta(t, DefaultAmbientProbability, p.Ambient.Probability, 0)
	assert.Equal(t, int64(DefaultAmbientDivisor), p.Ambient.Divisor)
	assert.Equal(t, int64(DefaultAmbientOffset), p.Ambient.Offset)
	assert.Equal(t, DefaultLeaderboardSize, p.Leaderboard.DefaultSize)
	assert.Equal(t, MaxLeaderboardSize, p.Leaderboard.MaxSize)
	assert.Equal(t, "Local", p.Quotes.Timezone)
	assert.Equal(t, time.Local, p.Quotes.Location())
}

func TestDefaults(t *testing.T) {
	d := defaults()

	assert.Equal(t, "corgi-bot", d["app.name"])
	assert.Equal(t, "local", d["app.environment"])
	assert.Equal(t, DefaultServerPort, d["server.port"])
	assert.Equal(t, DefaultStoreDriver, d["store.driver"])
	assert.Equal(t, "corgibot", d["store.redis.key_prefix"])
	assert.Equal(t, DefaultBreakerFailures, d["store.breaker.max_failures"])
	assert.Equal(t, DefaultAmbientProbability, d["personality.ambient.probability"])
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"APP_SERVER_PORT", "server.port"},
		{"APP_LOG_FILE_ENABLED", "log.file.enabled"},
		{"APP_STORE_POSTGRES_DSN", "store.postgres.dsn"},
		{"APP_SERVER_MAX__REQUEST__SIZE", "server.max_request_size"},
		{"APP_PERSONALITY_LEADERBOARD_MAX__SIZE", "personality.leaderboard.max_size"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.in))
		})
	}
}

func TestQuotesConfig_LocationFallback(t *testing.T) {
	assert.Equal(t, time.Local, QuotesConfig{Timezone: "Not/AZone"}.Location())
}
