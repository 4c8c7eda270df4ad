package relay_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/relayhttp/relay"
	"github.com/relayhttp/relay/relaytest"
)

func TestRouter_RouteList(t *testing.T) {
	t.Parallel()

	r := relay.New(relay.WithPrefix("/api"))
	r.Get("/users", func(_ relay.Context) {})
	r.Post("/users", func(_ relay.Context) {})
	r.Get("/users", func(_ relay.Context) {}) // duplicate, ignored

	assert.Equal(t, []relay.RouteInfo{
		{Method: "GET", Path: "/api/users", Key: "GET+/api/users"},
		{Method: "POST", Path: "/api/users", Key: "POST+/api/users"},
	}, r.RouteList())
}

func TestRouter_WriteRoutes(t *testing.T) {
	t.Parallel()

	r := relay.New()
	r.Get("/health", func(_ relay.Context) {})
	r.Redirect("/old", "/new")

	var buf bytes.Buffer
	require.NoError(t, r.WriteRoutes(&buf))

	var routes []relay.RouteInfo
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &routes))

	// One entry for the GET route plus one per verb of the redirect.
	assert.Len(t, routes, 6)
	assert.Contains(t, routes, relay.RouteInfo{Method: "GET", Path: "/health", Key: "GET+/health"})
	assert.Contains(t, routes, relay.RouteInfo{Method: "DELETE", Path: "/old", Key: "DELETE+/old"})
}

func TestRouter_ServeRoutes(t *testing.T) {
	t.Parallel()

	r := relay.New()
	r.ServeRoutes("/routes")
	r.Get("/late", func(_ relay.Context) {})

	rec := relaytest.NewRecorder(http.MethodGet, "/routes")
	r.Routes()(rec)

	assert.Equal(t, http.StatusOK, rec.Status())

	var routes []relay.RouteInfo
	require.NoError(t, yaml.Unmarshal([]byte(rec.Body()), &routes))

	// The table is read at dispatch time, so /late is included.
	assert.Contains(t, routes, relay.RouteInfo{Method: "GET", Path: "/late", Key: "GET+/late"})
	assert.Contains(t, routes, relay.RouteInfo{Method: "GET", Path: "/routes", Key: "GET+/routes"})
}
