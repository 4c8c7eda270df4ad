package relay

import (
	"io"
	"net/http"

	"gopkg.in/yaml.v3"
)

// RouteInfo describes one registered route.
type RouteInfo struct {
	Method string `yaml:"method"`
	Path   string `yaml:"path"`
	Key    string `yaml:"key"`
}

// RouteList returns the registered routes in registration order. Duplicate
// registrations that were ignored do not appear.
func (r *Router) RouteList() []RouteInfo {
	out := make([]RouteInfo, len(r.routes))
	copy(out, r.routes)
	return out
}

// WriteRoutes writes the route list to w as YAML.
func (r *Router) WriteRoutes(w io.Writer) error {
	return yaml.NewEncoder(w).Encode(r.RouteList())
}

// ServeRoutes registers a GET route on path that serves the route table as
// YAML. The table is read at dispatch time, so routes registered after
// ServeRoutes are included. Useful during development to see exactly which
// keys are dispatchable.
func (r *Router) ServeRoutes(path string) *Router {
	return r.Get(path, func(ctx Context) {
		ctx.SetStatus(http.StatusOK)
		_ = yaml.NewEncoder(ctx).Encode(r.RouteList())
	})
}
