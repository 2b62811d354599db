package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/lmsclient/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string     LMS API base URL
//	-t duration   per-request timeout, e.g. 10s
//	-s string     token storage: sqlite, redis or memory
//	-d string     SQLite database path
//	-r string     redis address
//	-l string     log level
//
// Arguments are filtered with flagx.FilterArgs so -c and -e, handled
// elsewhere, do not trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-s", "-d", "-r", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "LMS API base URL")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "per-request timeout")
	fs.StringVar(&cfg.Storage, "s", cfg.Storage, "token storage: sqlite, redis or memory")
	fs.StringVar(&cfg.StorageDSN, "d", cfg.StorageDSN, "SQLite database path")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
