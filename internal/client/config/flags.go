package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/stockdesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the inventory API
//	-t int      request timeout in seconds
//	-i int      online check interval in seconds
//	-d string   session database path
//	-l string   log file path
//	-b string   log backend (slog|zap)
//	-v string   log level
//
// Only the flags listed here are passed to the FlagSet, so -c/-config and
// flags owned by other loaders do not cause errors.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-i", "-d", "-l", "-b", "-v"})

	fs := flag.NewFlagSet("stockdesk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the inventory API")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	interval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.SessionDB, "d", cfg.SessionDB, "session database path")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "log file path")
	fs.StringVar(&cfg.LogBackend, "b", cfg.LogBackend, "log backend (slog|zap)")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	cfg.OnlineCheckInterval = time.Duration(*interval) * time.Second
	return nil
}
