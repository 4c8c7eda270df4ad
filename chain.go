package relay

// chain is an ordered middleware list executed by position. The handler at
// position i receives a continuation bound to position i+1, so invoking the
// continuation again re-enters the remainder from that point. No closure
// refers to itself and nothing is captured beyond the slice and the Context.
type chain []Middleware

func (c chain) run(ctx Context, pos int) {
	if pos >= len(c) {
		return
	}
	c[pos](ctx, func() { c.run(ctx, pos+1) })
}

// compose folds an ordered middleware list into a single handler. The empty
// chain composes to a no-op; a single handler receives a continuation that
// does nothing. Execution is strictly sequential and synchronous: control
// passes into the next handler inside the continuation call and returns to
// the caller afterwards, so stack depth grows with chain length.
func compose(handlers []Middleware) HandlerFunc {
	if len(handlers) == 0 {
		return func(Context) {}
	}
	c := chain(handlers)
	return func(ctx Context) { c.run(ctx, 0) }
}
