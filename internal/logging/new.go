package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	BackendSlog = "slog"
	BackendZap  = "zap"
)

// Options selects the logging backend and its outputs.
type Options struct {
	Backend string // "slog" (default) or "zap"
	Level   string // debug, info, warn, error; defaults to info
	File    string // optional log file, rotated by size
	Console io.Writer
}

// New builds a Logger from opts. The returned close function flushes and
// releases the log file, if any.
func New(opts Options) (Logger, func() error, error) {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	var rotating *lumberjack.Logger
	if opts.File != "" {
		rotating = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    16,
			MaxBackups: 3,
			MaxAge:     14,
		}
	}

	switch strings.ToLower(opts.Backend) {
	case "", BackendSlog:
		level, err := parseSlogLevel(opts.Level)
		if err != nil {
			return nil, nil, err
		}
		var w io.Writer = console
		if rotating != nil {
			w = io.MultiWriter(console, rotating)
		}
		h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
		return NewSlogLogger(slog.New(h)), closer(rotating, nil), nil

	case BackendZap:
		level, err := zapcore.ParseLevel(levelOrDefault(opts.Level))
		if err != nil {
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
		cores := []zapcore.Core{
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(console),
				level,
			),
		}
		if rotating != nil {
			cores = append(cores, zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(rotating),
				level,
			))
		}
		zl := NewZapLogger(zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1)))
		return zl, closer(rotating, zl.Sync), nil

	default:
		return nil, nil, fmt.Errorf("unknown log backend %q", opts.Backend)
	}
}

func levelOrDefault(s string) string {
	if s == "" {
		return "info"
	}
	return strings.ToLower(s)
}

func parseSlogLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(levelOrDefault(s))); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}

func closer(rotating *lumberjack.Logger, sync func() error) func() error {
	return func() error {
		if sync != nil {
			// zap returns EINVAL when syncing a terminal; nothing to flush there.
			_ = sync()
		}
		if rotating != nil {
			return rotating.Close()
		}
		return nil
	}
}
