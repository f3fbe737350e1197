package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/stockdesk/internal/flagx"
	"github.com/dmitrijs2005/stockdesk/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Intervals
// use timex.Duration, so they may be written as "3s" or as integer
// nanoseconds.
type JsonConfig struct {
	BaseURL             string         `json:"base_url"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	SessionDB           string         `json:"session_db"`
	LogFile             string         `json:"log_file"`
	LogBackend          string         `json:"log_backend"`
	LogLevel            string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c or -config. Keys
// missing from the file leave cfg untouched.
func parseJson(cfg *Config, args []string) error {
	path, err := flagx.ConfigPath(args)
	if err != nil || path == "" {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}

	setString(&cfg.BaseURL, jc.BaseURL)
	setString(&cfg.SessionDB, jc.SessionDB)
	setString(&cfg.LogFile, jc.LogFile)
	setString(&cfg.LogBackend, jc.LogBackend)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
