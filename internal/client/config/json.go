package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/lmsclient/internal/flagx"
	"github.com/dmitrijs2005/lmsclient/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations use
// timex.Duration so they may be written as "15s" or as integer nanoseconds.
// Absent fields leave the current value untouched.
type JsonConfig struct {
	APIBaseURL      *string         `json:"api_base_url"`
	RequestTimeout  *timex.Duration `json:"request_timeout"`
	Storage         *string         `json:"storage"`
	StorageDSN      *string         `json:"storage_dsn"`
	RedisAddr       *string         `json:"redis_addr"`
	RedisPrefix     *string         `json:"redis_prefix"`
	TokenKey        *string         `json:"token_key"`
	LogLevel        *string         `json:"log_level"`
	LogBackend      *string         `json:"log_backend"`
	NotificationTTL *timex.Duration `json:"notification_ttl"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without either flag it does nothing. Panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.Storage, jc.Storage)
	setString(&cfg.StorageDSN, jc.StorageDSN)
	setString(&cfg.RedisAddr, jc.RedisAddr)
	setString(&cfg.RedisPrefix, jc.RedisPrefix)
	setString(&cfg.TokenKey, jc.TokenKey)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogBackend, jc.LogBackend)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.NotificationTTL != nil {
		cfg.NotificationTTL = jc.NotificationTTL.Duration
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
