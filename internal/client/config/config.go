package config

import (
	"fmt"
	"time"
)

const (
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

// Config holds runtime settings for the LMS CLI.
//
// Fields:
//   - APIBaseURL: absolute http(s) URL of the LMS server; endpoint paths are appended to it.
//   - RequestTimeout: per-request deadline; zero disables it.
//   - Storage: where the session token is kept (sqlite, redis or memory).
//   - StorageDSN: SQLite database path when Storage is sqlite.
//   - RedisAddr, RedisPrefix: connection and key prefix when Storage is redis.
//   - TokenKey: storage key of the bearer token.
//   - LogLevel, LogBackend: logger configuration (slog or zap).
//   - NotificationTTL: how long a notification stays active.
type Config struct {
	APIBaseURL      string
	RequestTimeout  time.Duration
	Storage         string
	StorageDSN      string
	RedisAddr       string
	RedisPrefix     string
	TokenKey        string
	LogLevel        string
	LogBackend      string
	NotificationTTL time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000"
	c.RequestTimeout = 15 * time.Second
	c.Storage = StorageSQLite
	c.StorageDSN = "lms.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisPrefix = "lms:"
	c.TokenKey = "token"
	c.LogLevel = "info"
	c.LogBackend = "slog"
	c.NotificationTTL = 5 * time.Second
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageSQLite, StorageRedis, StorageMemory:
	default:
		return fmt.Errorf("unknown storage %q", c.Storage)
	}
	switch c.LogBackend {
	case "slog", "zap":
	default:
		return fmt.Errorf("unknown log backend %q", c.LogBackend)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("negative request timeout %s", c.RequestTimeout)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
