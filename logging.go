package relay

import (
	"context"
	"log/slog"
	"time"
)

// Logger returns a pipeline stage that logs each request with the provided
// slog.Logger after the rest of the chain has run.
func Logger(logger *slog.Logger) Middleware {
	return func(ctx Context, next Next) {
		start := time.Now()
		next()

		logger.LogAttrs(context.Background(), slog.LevelInfo, "request",
			slog.String("method", ctx.Method()),
			slog.String("path", ctx.Path()),
			slog.Int("status", ctx.Status()),
			slog.Duration("latency", time.Since(start)),
		)
	}
}
