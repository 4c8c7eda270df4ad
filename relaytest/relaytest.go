// Package relaytest provides test helpers for driving relay dispatchers and
// handler chains without an HTTP server.
package relaytest

import (
	"bytes"

	"github.com/relayhttp/relay"
)

// Recorder is an in-memory relay.Context. It starts in the unhandled state
// and records everything handlers do to it.
type Recorder struct {
	// ReqMethod and ReqPath are what the dispatcher matches against.
	ReqMethod string
	ReqPath   string

	// Remote is reported through RemoteAddr for stages that key on the peer
	// address.
	Remote string

	status   int
	location string
	body     bytes.Buffer
}

var _ relay.Context = (*Recorder)(nil)

// NewRecorder returns a Recorder for method and path, in the unhandled
// state.
func NewRecorder(method, path string) *Recorder {
	return &Recorder{
		ReqMethod: method,
		ReqPath:   path,
		status:    relay.StatusUnhandled,
	}
}

func (r *Recorder) Method() string              { return r.ReqMethod }
func (r *Recorder) Path() string                { return r.ReqPath }
func (r *Recorder) Status() int                 { return r.status }
func (r *Recorder) SetStatus(code int)          { r.status = code }
func (r *Recorder) Redirect(target string)      { r.location = target }
func (r *Recorder) Write(p []byte) (int, error) { return r.body.Write(p) }

// RemoteAddr reports the configured peer address.
func (r *Recorder) RemoteAddr() string { return r.Remote }

// Location returns the redirect target recorded by handlers, if any.
func (r *Recorder) Location() string { return r.location }

// Body returns everything written to the response body.
func (r *Recorder) Body() string { return r.body.String() }

// Handled reports whether any handler moved the status off the unhandled
// sentinel.
func (r *Recorder) Handled() bool { return r.status != relay.StatusUnhandled }
