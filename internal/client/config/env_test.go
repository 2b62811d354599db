package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("process environment", func(t *testing.T) {
		os.Args = []string{"testbin"}
		t.Setenv("LMS_API_URL", "http://env.example")
		t.Setenv("LMS_REQUEST_TIMEOUT", "3s")
		t.Setenv("LMS_STORAGE", "memory")
		t.Setenv("LMS_LOG_BACKEND", "zap")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "http://env.example", cfg.APIBaseURL)
		assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
		assert.Equal(t, StorageMemory, cfg.Storage)
		assert.Equal(t, "zap", cfg.LogBackend)
		assert.Equal(t, "lms.db", cfg.StorageDSN)
	})

	t.Run("dotenv file from -e", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(p, []byte("LMS_STORAGE_DSN=/tmp/x.db\nLMS_REDIS_ADDR=redis:6380\n"), 0o600))
		t.Cleanup(func() {
			_ = os.Unsetenv("LMS_STORAGE_DSN")
			_ = os.Unsetenv("LMS_REDIS_ADDR")
		})
		os.Args = []string{"testbin", "-e", p}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "/tmp/x.db", cfg.StorageDSN)
		assert.Equal(t, "redis:6380", cfg.RedisAddr)
	})

	t.Run("missing named dotenv → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-env", filepath.Join(t.TempDir(), "absent.env")}
		require.Panics(t, func() { parseEnv(&Config{}) })
	})

	t.Run("bad timeout → panics", func(t *testing.T) {
		os.Args = []string{"testbin"}
		t.Setenv("LMS_REQUEST_TIMEOUT", "forever")
		require.Panics(t, func() { parseEnv(&Config{}) })
	})
}
