// Package logging defines the small structured-logging surface the
// server uses, backed by log/slog.
package logging

import "context"

// Logger is a context-aware, structured logger. Variadic args are
// key-value pairs, e.g. log.Info(ctx, "listening", "port", port).
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}
