package relay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/relayhttp/relay"
	"github.com/relayhttp/relay/relaytest"
)

func TestCompose_order(t *testing.T) {
	t.Parallel()

	var order []string
	record := func(name string) relay.Middleware {
		return func(_ relay.Context, next relay.Next) {
			order = append(order, name)
			next()
		}
	}

	h := relay.Compose([]relay.Middleware{record("h1"), record("h2"), record("h3")})
	h(relaytest.NewRecorder("GET", "/x"))

	assert.Equal(t, []string{"h1", "h2", "h3"}, order)
}

func TestCompose_shortCircuit(t *testing.T) {
	t.Parallel()

	var order []string
	h := relay.Compose([]relay.Middleware{
		func(_ relay.Context, _ relay.Next) {
			order = append(order, "h1")
			// never calls next
		},
		func(_ relay.Context, next relay.Next) {
			order = append(order, "h2")
			next()
		},
		func(_ relay.Context, next relay.Next) {
			order = append(order, "h3")
			next()
		},
	})
	h(relaytest.NewRecorder("GET", "/x"))

	assert.Equal(t, []string{"h1"}, order)
}

func TestCompose_doubleNext(t *testing.T) {
	t.Parallel()

	var order []string
	h := relay.Compose([]relay.Middleware{
		func(_ relay.Context, next relay.Next) {
			order = append(order, "h1")
			next()
			next()
		},
		func(_ relay.Context, next relay.Next) {
			order = append(order, "h2")
			next()
		},
		func(_ relay.Context, next relay.Next) {
			order = append(order, "h3")
			next()
		},
	})
	h(relaytest.NewRecorder("GET", "/x"))

	// Calling the continuation again re-runs the remainder of the chain.
	assert.Equal(t, []string{"h1", "h2", "h3", "h2", "h3"}, order)
}

func TestCompose_empty(t *testing.T) {
	t.Parallel()

	rec := relaytest.NewRecorder("GET", "/x")
	relay.Compose(nil)(rec)

	assert.False(t, rec.Handled())
}

func TestCompose_single(t *testing.T) {
	t.Parallel()

	calls := 0
	h := relay.Compose([]relay.Middleware{
		func(_ relay.Context, next relay.Next) {
			calls++
			// The continuation of the last handler does nothing; calling it
			// must be safe.
			next()
			next()
		},
	})
	h(relaytest.NewRecorder("GET", "/x"))

	assert.Equal(t, 1, calls)
}
