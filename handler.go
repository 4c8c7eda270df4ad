package relay

import "fmt"

// Next resumes the remainder of the current chain. A handler that never
// calls it halts the chain; calling it more than once re-runs the remainder
// from the same point each time.
type Next func()

// Middleware is the canonical handler shape: it receives the request Context
// and the continuation for the rest of the chain.
type Middleware func(ctx Context, next Next)

// HandlerFunc is a terminal handler. When registered in a chain it always
// falls through to the next handler.
type HandlerFunc func(ctx Context)

// middleware wraps a terminal handler so it fits the canonical shape.
func (h HandlerFunc) middleware() Middleware {
	return func(ctx Context, next Next) {
		h(ctx)
		next()
	}
}

// normalize converts any accepted handler shape to the canonical Middleware.
// The set is closed; anything else is a programming error at registration
// time and panics, like a malformed http.ServeMux pattern would.
func normalize(h any) Middleware {
	switch h := h.(type) {
	case Middleware:
		return h
	case func(Context, Next):
		return h
	case HandlerFunc:
		return h.middleware()
	case func(Context):
		return HandlerFunc(h).middleware()
	case nil:
		panic("relay: nil handler")
	default:
		panic(fmt.Sprintf("relay: unsupported handler type %T", h))
	}
}

// Bind adapts a method expecting a continuation, invoked on recv. A nil recv
// skips both the method and the continuation, halting the chain.
func Bind[T any](recv *T, method func(*T, Context, Next)) Middleware {
	return func(ctx Context, next Next) {
		if recv != nil {
			method(recv, ctx, next)
		}
	}
}

// BindFunc adapts a terminal method invoked on recv. A nil recv skips the
// method; the chain still falls through.
func BindFunc[T any](recv *T, method func(*T, Context)) Middleware {
	return func(ctx Context, next Next) {
		if recv != nil {
			method(recv, ctx)
		}
		next()
	}
}

// BindNew adapts a method expecting a continuation, invoked on a fresh
// zero-value T on every call. State on T does not survive between requests;
// suitable for stateless handler types only.
func BindNew[T any](method func(*T, Context, Next)) Middleware {
	return func(ctx Context, next Next) {
		method(new(T), ctx, next)
	}
}

// BindNewFunc adapts a terminal method invoked on a fresh zero-value T on
// every call. See BindNew for the statefulness caveat.
func BindNewFunc[T any](method func(*T, Context)) Middleware {
	return func(ctx Context, next Next) {
		method(new(T), ctx)
		next()
	}
}
