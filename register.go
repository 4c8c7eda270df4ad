package relay

import "net/http"

// allMethods is the verb set covered by All, in registration order.
var allMethods = []string{
	http.MethodDelete,
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
}

// Get registers a handler chain for GET requests on path.
func (r *Router) Get(path string, handlers ...any) *Router {
	return r.register([]string{http.MethodGet}, path, handlers)
}

// Post registers a handler chain for POST requests on path.
func (r *Router) Post(path string, handlers ...any) *Router {
	return r.register([]string{http.MethodPost}, path, handlers)
}

// Put registers a handler chain for PUT requests on path.
func (r *Router) Put(path string, handlers ...any) *Router {
	return r.register([]string{http.MethodPut}, path, handlers)
}

// Head registers a handler chain for HEAD requests on path.
func (r *Router) Head(path string, handlers ...any) *Router {
	return r.register([]string{http.MethodHead}, path, handlers)
}

// Del registers a handler chain for DELETE requests on path.
func (r *Router) Del(path string, handlers ...any) *Router {
	return r.register([]string{http.MethodDelete}, path, handlers)
}

// All registers the handler chain under DELETE, GET, HEAD, POST and PUT at
// once. The chain is normalized and composed a single time; the five table
// entries share the composed handler.
func (r *Router) All(path string, handlers ...any) *Router {
	return r.register(allMethods, path, handlers)
}

// Redirect answers every verb on path with a redirect to destination. The
// status defaults to 301 Moved Permanently; pass one explicit code to
// override it.
func (r *Router) Redirect(path, destination string, status ...int) *Router {
	code := http.StatusMovedPermanently
	if len(status) > 0 {
		code = status[0]
	}
	return r.All(path, func(ctx Context) {
		ctx.Redirect(destination)
		ctx.SetStatus(code)
	})
}
