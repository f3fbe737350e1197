// Package config loads runtime configuration for the stockdesk console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the inventory API
//	-t int      request timeout (seconds)
//	-i int      online status check interval (seconds)
//	-d string   session database path
//	-l string   log file path
//	-b string   log backend (slog|zap)
//	-v string   log level
//
// # JSON schema
//
//	{
//	  "base_url": "http://localhost:4000",
//	  "request_timeout": "10s",
//	  "online_check_interval": "5s",
//	  "session_db": "stockdesk.db",
//	  "log_file": "stockdesk.log",
//	  "log_backend": "zap",
//	  "log_level": "debug"
//	}
package config
