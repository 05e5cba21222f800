// Package config loads the bot's settings with koanf and validates them.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 8080

	// DefaultMaxRequestSize is the default maximum request body size (64KB).
	DefaultMaxRequestSize = 64 << 10

	// DefaultLogFileMaxSizeMB is the default max log file size in megabytes.
	DefaultLogFileMaxSizeMB = 100

	// DefaultLogFileMaxBackups is the default number of old log files to retain.
	DefaultLogFileMaxBackups = 3

	// DefaultLogFileMaxAgeDays is the default max days to retain old log files.
	DefaultLogFileMaxAgeDays = 28

	// DefaultStoreDriver is the backend used when none is configured.
	DefaultStoreDriver = "sqlite"

	// DefaultSQLitePath is where the sqlite store lives by default.
	DefaultSQLitePath = "./data/corgibot.db"

	// DefaultBreakerFailures is how many consecutive store failures open the breaker.
	DefaultBreakerFailures = 5

	// DefaultAmbientProbability is the flat gate of the ambient roll.
	DefaultAmbientProbability = 0.15

	// DefaultAmbientDivisor scales the community max into the low end of the draw.
	DefaultAmbientDivisor = 10

	// DefaultAmbientOffset is added to the high end of the draw.
	DefaultAmbientOffset = 7

	// DefaultLeaderboardSize is the leaderboard length when none is requested.
	DefaultLeaderboardSize = 10

	// MaxLeaderboardSize caps the requested leaderboard length.
	MaxLeaderboardSize = 100
)

// Store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Config is the root configuration structure.
type Config struct {
	App         AppConfig         `koanf:"app"         validate:"required"`
	Server      ServerConfig      `koanf:"server"      validate:"required"`
	Log         LogConfig         `koanf:"log"         validate:"required"`
	Telemetry   TelemetryConfig   `koanf:"telemetry"`
	Store       StoreConfig       `koanf:"store"       validate:"required"`
	Personality PersonalityConfig `koanf:"personality" validate:"required"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	RequestTimeout  time.Duration `koanf:"request_timeout"  validate:"required,min=100ms"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true,omitempty,url"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// StoreConfig selects and configures the persistence backend. Only the
// section matching Driver is read.
type StoreConfig struct {
	Driver   string         `koanf:"driver"   validate:"required,oneof=sqlite postgres redis"`
	Timeout  time.Duration  `koanf:"timeout"  validate:"required,min=100ms"`
	SQLite   SQLiteConfig   `koanf:"sqlite"`
	Postgres PostgresConfig `koanf:"postgres"`
	Redis    RedisConfig    `koanf:"redis"`
	Breaker  BreakerConfig  `koanf:"breaker"`
}

// BreakerConfig makes store calls fail fast while the backend is down.
// A zero MaxFailures disables the breaker.
type BreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"    validate:"min=0"`
	Cooldown      time.Duration `koanf:"cooldown"        validate:"required_with=MaxFailures,omitempty,min=100ms"`
	HalfOpenLimit int           `koanf:"half_open_limit" validate:"min=0"`
}

// SQLiteConfig configures the sqlite store.
type SQLiteConfig struct {
	// Path is a file path or ":memory:".
	Path string `koanf:"path"`
}

// PostgresConfig configures the postgres store.
type PostgresConfig struct {
	DSN string `koanf:"dsn"`
}

// RedisConfig configures the redis store.
type RedisConfig struct {
	Addr      string `koanf:"addr"`
	Password  string `koanf:"password"`
	DB        int    `koanf:"db"         validate:"min=0,max=15"`
	KeyPrefix string `koanf:"key_prefix"`
}

// PersonalityConfig tunes the bot's behavior.
type PersonalityConfig struct {
	Ambient     AmbientConfig     `koanf:"ambient"     validate:"required"`
	Leaderboard LeaderboardConfig `koanf:"leaderboard" validate:"required"`
	Quotes      QuotesConfig      `koanf:"quotes"      validate:"required"`
}

// AmbientConfig parameterizes the unprompted reaction roll.
type AmbientConfig struct {
	Probability float64 `koanf:"probability" validate:"min=0,max=1"`
	Divisor     int64   `koanf:"divisor"     validate:"required,min=1"`
	Offset      int64   `koanf:"offset"      validate:"min=0"`
}

// LeaderboardConfig bounds leaderboard requests.
type LeaderboardConfig struct {
	DefaultSize int `koanf:"default_size" validate:"required,min=1"`
	MaxSize     int `koanf:"max_size"     validate:"required,min=1,gtefield=DefaultSize"`
}

// QuotesConfig controls quote rendering.
type QuotesConfig struct {
	// Timezone is an IANA name, "Local" or "UTC".
	Timezone string `koanf:"timezone" validate:"required,location"`
}

// Location resolves Timezone. Validate guarantees it loads.
func (q QuotesConfig) Location() *time.Location {
	loc, err := time.LoadLocation(q.Timezone)
	if err != nil {
		return time.Local
	}

	return loc
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "corgi-bot",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "15s",
		"server.write_timeout":    "15s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.request_timeout":  "5s",
		"server.max_request_size": DefaultMaxRequestSize,

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/corgibot.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "corgi-bot",
		"telemetry.sampling_rate": 1.0,

		"store.driver":           DefaultStoreDriver,
		"store.timeout":          "3s",
		"store.sqlite.path":      DefaultSQLitePath,
		"store.postgres.dsn":     "",
		"store.redis.addr":       "localhost:6379",
		"store.redis.password":   "",
		"store.redis.db":         0,
		"store.redis.key_prefix": "corgibot",

		"store.breaker.max_failures":    DefaultBreakerFailures,
		"store.breaker.cooldown":        "10s",
		"store.breaker.half_open_limit": 1,

		"personality.ambient.probability":      DefaultAmbientProbability,
		"personality.ambient.divisor":          DefaultAmbientDivisor,
		"personality.ambient.offset":           DefaultAmbientOffset,
		"personality.leaderboard.default_size": DefaultLeaderboardSize,
		"personality.leaderboard.max_size":     MaxLeaderboardSize,
		"personality.quotes.timezone":          "Local",
	}
}

// Load layers configuration, later sources winning:
//
//	defaults < configs/base.yaml < configs/<profile>.yaml < APP_* environment
//
// Missing files are skipped. Env names map "_" to the key delimiter and "__"
// to a literal underscore, so APP_STORE_REDIS_KEY__PREFIX sets
// store.redis.key_prefix.
func Load(profile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	files := []string{filepath.Join("configs", "base.yaml")}
	if profile != "" {
		files = append(files, filepath.Join("configs", profile+".yaml"))
	}

	for _, path := range files {
		if err := loadFileIfExists(k, path); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("APP_", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := new(Config)
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	return cfg, nil
}

// envKey maps APP_SERVER_PORT to server.port.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "APP_"))

	parts := strings.Split(s, "__")
	for i, p := range parts {
		parts[i] = strings.ReplaceAll(p, "_", ".")
	}

	return strings.Join(parts, "_")
}

// loadFileIfExists merges the YAML file at path. A missing file is not an
// error.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
