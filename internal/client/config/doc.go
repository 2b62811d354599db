// Package config loads runtime configuration for the LMS CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables prefixed LMS_, optionally from a dotenv file
//     (see parseEnv) selected with -e or -env, or ./.env.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string     LMS API base URL
//	-t duration   per-request timeout
//	-s string     token storage (sqlite, redis, memory)
//	-d string     SQLite database path
//	-r string     redis address
//	-l string     log level
//
// # JSON schema
//
// Durations are timex.Duration values: strings like "15s" or integer
// nanoseconds.
//
//	{
//	  "api_base_url": "http://localhost:5000",
//	  "request_timeout": "15s",
//	  "storage": "sqlite",
//	  "storage_dsn": "lms.db",
//	  "log_backend": "zap",
//	  "notification_ttl": "5s"
//	}
package config
