// Package logging defines the structured operational logger used across the
// console. User-facing output never goes through it; it records diagnostics
// such as failed submissions and refreshes.
//
// Two backends are provided: SlogLogger (log/slog) and ZapLogger
// (go.uber.org/zap). New selects one from Options and can tee the output to
// a size-rotated file.
package logging

import "context"

// Logger is a context-aware, structured logger. Args are key/value pairs;
// pairs attached to ctx with ContextWith are appended to every entry.
//
//	log.Info(ctx, "list refreshed", "kind", kind, "count", n)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes args.
	With(args ...any) Logger
}

type ctxFieldsKey struct{}

// ContextWith returns a copy of ctx carrying args in addition to the pairs
// already attached to it.
func ContextWith(ctx context.Context, args ...any) context.Context {
	if len(args) == 0 {
		return ctx
	}
	prev := contextFields(ctx)
	fields := make([]any, 0, len(prev)+len(args))
	fields = append(fields, prev...)
	fields = append(fields, args...)
	return context.WithValue(ctx, ctxFieldsKey{}, fields)
}

func contextFields(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(ctxFieldsKey{}).([]any)
	return fields
}

// withContextFields appends the pairs carried by ctx to args.
func withContextFields(ctx context.Context, args []any) []any {
	fields := contextFields(ctx)
	if len(fields) == 0 {
		return args
	}
	out := make([]any, 0, len(args)+len(fields))
	out = append(out, args...)
	return append(out, fields...)
}
