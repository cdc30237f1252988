// Package ctxlog carries a slog.Logger through context.Context so that
// per-run logger instances reach the property sources without threading a
// logger parameter everywhere.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is unexported to keep this context key from colliding with keys owned
// by other packages.
type key struct{}

var loggerKey = key{}

// WithLogger returns a context carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger carried by ctx, or slog.Default() when the
// context carries none.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
