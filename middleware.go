package relay

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// Recovery returns a pipeline stage that recovers from panics raised further
// down the chain and marks the request as a 500. The dispatcher itself never
// catches panics; install this stage explicitly where isolation is wanted.
func Recovery() Middleware {
	return func(ctx Context, next Next) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic recovered",
					"panic", rec,
					"stack", string(debug.Stack()),
					"method", ctx.Method(),
					"path", ctx.Path(),
				)
				ctx.SetStatus(http.StatusInternalServerError)
			}
		}()
		next()
	}
}
