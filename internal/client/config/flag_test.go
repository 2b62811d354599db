package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd", "-a", "http://lms:8080", "-t", "7s", "-s", "redis", "-d", "x.db", "-r", "cache:6379", "-l", "debug"},
			expected: &Config{
				APIBaseURL: "http://lms:8080", RequestTimeout: 7 * time.Second, Storage: "redis",
				StorageDSN: "x.db", RedisAddr: "cache:6379", LogLevel: "debug",
			}},
		{name: "foreign flags ignored", args: []string{"cmd", "-c", "cfg.json", "-a", "http://lms"},
			expected: &Config{APIBaseURL: "http://lms"}},
		{name: "incorrect timeout", args: []string{"cmd", "-t", "abc"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
