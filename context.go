package relay

import (
	"bytes"
	"net/http"
)

// StatusUnhandled is the status a fresh Context starts with. A dispatcher
// only acts while the Context still reports it; the first handler to set any
// other status marks the request as handled for every stage downstream.
const StatusUnhandled = http.StatusNotFound

// Context is the per-request state threaded through a middleware chain.
// Handlers borrow it for the duration of one dispatch and mutate it in
// place; they must not retain it afterwards.
type Context interface {
	// Method returns the request method, e.g. "GET".
	Method() string

	// Path returns the request path as matched against route keys. No URL
	// decoding and no trailing-slash normalization is applied.
	Path() string

	// Status returns the current response status. StatusUnhandled means no
	// handler has produced a response yet.
	Status() int

	// SetStatus records the response status.
	SetStatus(code int)

	// Redirect records a redirect target for the response-writing stage.
	// It does not change the status; pair it with SetStatus.
	Redirect(target string)

	// Write appends to the response body.
	Write(p []byte) (int, error)
}

// httpContext adapts one net/http exchange to the Context interface. Body
// writes are buffered so the status line can be decided after the whole
// chain has run.
type httpContext struct {
	w http.ResponseWriter
	r *http.Request

	status   int
	location string
	body     bytes.Buffer
}

func newHTTPContext(w http.ResponseWriter, r *http.Request) *httpContext {
	return &httpContext{w: w, r: r, status: StatusUnhandled}
}

func (c *httpContext) Method() string              { return c.r.Method }
func (c *httpContext) Path() string                { return c.r.URL.Path }
func (c *httpContext) Status() int                 { return c.status }
func (c *httpContext) SetStatus(code int)          { c.status = code }
func (c *httpContext) Redirect(target string)      { c.location = target }
func (c *httpContext) Write(p []byte) (int, error) { return c.body.Write(p) }

// RemoteAddr reports the peer address. RateLimit keys on it by default.
func (c *httpContext) RemoteAddr() string { return c.r.RemoteAddr }

// finalize writes the buffered response. A request no handler touched gets
// the standard not-found text.
func (c *httpContext) finalize() {
	if c.location != "" {
		c.w.Header().Set("Location", c.location)
	}
	if c.status == StatusUnhandled && c.body.Len() == 0 {
		http.Error(c.w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}
	c.w.WriteHeader(c.status)
	_, _ = c.w.Write(c.body.Bytes())
}
