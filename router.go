package relay

// Router maps a method and an exact path to one composed handler chain.
// Configure it fully, then serve: registration is not synchronized against
// dispatch, matching the "configure, then serve" contract of the standard
// library's http.ServeMux.
type Router struct {
	prefix string
	table  map[string]HandlerFunc
	routes []RouteInfo
}

// Option configures a Router.
type Option func(*Router)

// WithPrefix sets the path prefix prepended to every route registered on
// the Router.
func WithPrefix(p string) Option {
	return func(r *Router) {
		r.prefix = p
	}
}

// New creates a new Router with the given options.
func New(opts ...Option) *Router {
	r := &Router{
		table: make(map[string]HandlerFunc),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Prefix replaces the Router's path prefix. It affects subsequent
// registrations only; keys already in the table keep the prefix they were
// registered under and stay reachable at their original full paths.
func (r *Router) Prefix(p string) *Router {
	r.prefix = p
	return r
}

// routeKey is the exact-match table key: no URL decoding, no trailing-slash
// collapsing. "GET" on "/users" under prefix "/api" keys as
// "GET+/api/users".
func routeKey(method, prefix, path string) string {
	return method + "+" + prefix + path
}

// insert stores a composed handler under one verb. The first registration
// for a key wins; a duplicate is silently ignored and the original kept.
func (r *Router) insert(method, path string, h HandlerFunc) {
	key := routeKey(method, r.prefix, path)
	if _, ok := r.table[key]; ok {
		return
	}
	r.table[key] = h
	r.routes = append(r.routes, RouteInfo{
		Method: method,
		Path:   r.prefix + path,
		Key:    key,
	})
}

// register normalizes the handler arguments in the order given, composes
// them once, and inserts the composed handler under each verb. The verbs
// share a single composed handler.
func (r *Router) register(methods []string, path string, handlers []any) *Router {
	mws := make([]Middleware, len(handlers))
	for i, h := range handlers {
		mws[i] = normalize(h)
	}
	composed := compose(mws)
	for _, method := range methods {
		r.insert(method, path, composed)
	}
	return r
}

// lookup matches the full request path against stored keys. Prefixes are
// baked into keys at registration time, so a Router mounted under "/api"
// matches requests whose paths carry that prefix.
func (r *Router) lookup(method, path string) (HandlerFunc, bool) {
	h, ok := r.table[routeKey(method, "", path)]
	return h, ok
}

// Routes returns the dispatcher for this Router. The closure reads the live
// table, so it can be handed to an App, or registered on another Router,
// before configuration finishes.
//
// The dispatcher only acts while the Context is still unhandled, which lets
// several Routers coexist as stages of one pipeline: whichever matches
// first claims the request, and the rest skip it. A miss is not an error;
// the Context is left unhandled for downstream stages.
func (r *Router) Routes() HandlerFunc {
	return func(ctx Context) {
		if ctx.Status() != StatusUnhandled {
			return
		}
		if h, ok := r.lookup(ctx.Method(), ctx.Path()); ok {
			h(ctx)
		}
	}
}
