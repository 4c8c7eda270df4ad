// Command sample demonstrates the github.com/relayhttp/relay router with a
// small API behind a logging, recovery, and rate-limiting pipeline.
//
// Run:
//
//	go run ./cmd/sample
//
// Then explore:
//
//	GET  http://localhost:8080/v1/health      — health check
//	GET  http://localhost:8080/v1/users       — list users (guarded)
//	GET  http://localhost:8080/v1/routes      — route table as YAML
//	GET  http://localhost:8080/health         — 301 to /v1/health
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/relayhttp/relay"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})))

	app := relay.NewApp().
		Use(relay.Logger(slog.Default())).
		Use(relay.Recovery()).
		Use(relay.RateLimit(relay.RateLimitConfig{Rate: 50, Burst: 100})).
		Use(newAPIRouter().Routes()).
		Use(newLegacyRouter().Routes())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slog.Info("listening", "addr", ":8080")
	if err := app.ListenAndServe(ctx, ":8080"); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", "err", err)
		os.Exit(1)
	}
}

func newAPIRouter() *relay.Router {
	guard := &apiKeyGuard{key: "letmein"}

	r := relay.New(relay.WithPrefix("/v1"))
	r.Get("/health", handleHealth)
	r.Get("/users", relay.Bind(guard, (*apiKeyGuard).check), handleListUsers)
	r.ServeRoutes("/routes")
	return r
}

// newLegacyRouter keeps old unprefixed paths alive. It runs after the API
// router, so it only sees requests the API router left unhandled.
func newLegacyRouter() *relay.Router {
	r := relay.New()
	r.Redirect("/health", "/v1/health")
	return r
}

func handleHealth(ctx relay.Context) {
	ctx.SetStatus(http.StatusOK)
	_, _ = ctx.Write([]byte("ok\n"))
}

func handleListUsers(ctx relay.Context) {
	ctx.SetStatus(http.StatusOK)
	_, _ = ctx.Write([]byte("alice\nbob\n"))
}

// apiKeyGuard demonstrates a bound guard middleware: when it is not
// configured with a key it refuses the request and never calls next, so the
// rest of the chain is skipped. A real deployment would check credentials.
type apiKeyGuard struct {
	key string
}

func (g *apiKeyGuard) check(ctx relay.Context, next relay.Next) {
	if g.key == "" {
		ctx.SetStatus(http.StatusUnauthorized)
		return
	}
	next()
}
