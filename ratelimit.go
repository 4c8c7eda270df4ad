package relay

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitConfig configures the RateLimit stage.
type RateLimitConfig struct {
	Rate            float64                  // requests per second
	Burst           int                      // max burst
	KeyFunc         func(ctx Context) string // default: peer address when the Context exposes one
	OnLimit         func(ctx Context)        // default: status 429
	CleanupInterval time.Duration            // how often to prune idle limiters (default: 1m)
	MaxIdle         time.Duration            // remove limiters idle longer than this (default: 5m)
}

// remoteAddresser is implemented by Contexts that know their peer address,
// such as the one App builds per request. The default KeyFunc uses it and
// falls back to a single shared bucket otherwise.
type remoteAddresser interface {
	RemoteAddr() string
}

// RateLimit returns a pipeline stage that applies per-key token-bucket rate
// limiting. An over-limit request is answered by OnLimit and the chain is
// halted.
func RateLimit(cfg RateLimitConfig) Middleware {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(ctx Context) string {
			ra, ok := ctx.(remoteAddresser)
			if !ok {
				return ""
			}
			host, _, err := net.SplitHostPort(ra.RemoteAddr())
			if err != nil {
				return ra.RemoteAddr()
			}
			return host
		}
	}
	if cfg.OnLimit == nil {
		cfg.OnLimit = func(ctx Context) {
			ctx.SetStatus(http.StatusTooManyRequests)
		}
	}

	cleanupInterval := cfg.CleanupInterval
	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}
	maxIdle := cfg.MaxIdle
	if maxIdle <= 0 {
		maxIdle = 5 * time.Minute
	}

	var (
		mu          sync.Mutex
		limiters    = make(map[string]*limiterEntry)
		lastCleanup time.Time
	)

	return func(ctx Context, next Next) {
		key := cfg.KeyFunc(ctx)

		mu.Lock()
		now := time.Now()

		// Lazy cleanup of expired limiters.
		if now.Sub(lastCleanup) >= cleanupInterval {
			for k, e := range limiters {
				if now.Sub(e.lastSeen) > maxIdle {
					delete(limiters, k)
				}
			}
			lastCleanup = now
		}

		entry, ok := limiters[key]
		if !ok {
			entry = &limiterEntry{
				limiter: rate.NewLimiter(rate.Limit(cfg.Rate), cfg.Burst),
			}
			limiters[key] = entry
		}
		entry.lastSeen = now
		mu.Unlock()

		if !entry.limiter.Allow() {
			cfg.OnLimit(ctx)
			return
		}

		next()
	}
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}
