package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the stockdesk console.
//
// Fields:
//   - BaseURL: root URL of the inventory API.
//   - RequestTimeout: upper bound of one API request.
//   - OnlineCheckInterval: how often the console checks API reachability.
//   - SessionDB: path of the local SQLite file holding the signed-in session.
//   - LogFile: optional rotating operational log; empty means stderr only.
//   - LogBackend: "slog" or "zap".
//   - LogLevel: "debug", "info", "warn" or "error".
type Config struct {
	BaseURL             string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	SessionDB           string
	LogFile             string
	LogBackend          string
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:4000"
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 5 * time.Second
	c.SessionDB = "stockdesk.db"
	c.LogFile = ""
	c.LogBackend = "slog"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if -c/-config is given) and command-line flags. Later sources take
// precedence over earlier ones. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
