package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/lmsclient/internal/flagx"
)

// parseEnv overlays Config with LMS_* environment variables. A dotenv file
// named by -e/-env, or ./.env when present, is loaded first; variables that
// are already set in the process environment win over the file.
//
// Variables:
//
//	LMS_API_URL  LMS_REQUEST_TIMEOUT  LMS_STORAGE  LMS_STORAGE_DSN
//	LMS_REDIS_ADDR  LMS_LOG_LEVEL  LMS_LOG_BACKEND
//
// Panics when an explicitly named file cannot be read or a duration is
// malformed.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFileFlag(os.Args[1:]); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	lookup(&cfg.APIBaseURL, "LMS_API_URL")
	lookup(&cfg.Storage, "LMS_STORAGE")
	lookup(&cfg.StorageDSN, "LMS_STORAGE_DSN")
	lookup(&cfg.RedisAddr, "LMS_REDIS_ADDR")
	lookup(&cfg.LogLevel, "LMS_LOG_LEVEL")
	lookup(&cfg.LogBackend, "LMS_LOG_BACKEND")

	if v, ok := os.LookupEnv("LMS_REQUEST_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
}

func lookup(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
