package relay

import (
	"context"
	"net/http"
	"time"
)

// App runs a middleware pipeline over plain net/http. Stages are added with
// Use in execution order; a Router plugs in as one stage through Routes.
// It implements http.Handler.
type App struct {
	stages []Middleware
}

// NewApp creates an empty pipeline.
func NewApp() *App {
	return &App{}
}

// Use appends handlers to the pipeline. The accepted shapes match route
// registration: Middleware, HandlerFunc, and their raw func forms.
func (a *App) Use(handlers ...any) *App {
	for _, h := range handlers {
		a.stages = append(a.stages, normalize(h))
	}
	return a
}

// ServeHTTP implements http.Handler. Each request gets a fresh Context in
// the unhandled state; once the chain returns, the buffered response is
// written out.
func (a *App) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	ctx := newHTTPContext(w, req)
	compose(a.stages)(ctx)
	ctx.finalize()
}

// ListenAndServe starts an HTTP server on the given address.
// It blocks until the context is cancelled, then shuts down gracefully.
func (a *App) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           a,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
