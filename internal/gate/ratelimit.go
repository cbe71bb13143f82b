package gate

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

// DefaultRateKeys bounds how many token buckets are kept when the policy does
// not set gate.rate.max_keys.
const DefaultRateKeys = 10000

// RateLimiter keeps one token bucket per key. Only the most recently used
// maxKeys buckets are kept; an evicted key starts again with a full bucket.
type RateLimiter struct {
	mu       sync.Mutex
	limiters *lru.Cache[string, *rate.Limiter]
	r        rate.Limit
	b        int
}

// NewRateLimiter creates a limiter allowing r requests per second with burst b
// for each key, tracking at most maxKeys keys.
func NewRateLimiter(r rate.Limit, b, maxKeys int) *RateLimiter {
	if b < 1 {
		b = 1
	}
	if maxKeys < 1 {
		maxKeys = DefaultRateKeys
	}

	// lru.New only fails for a non-positive size.
	cache, _ := lru.New[string, *rate.Limiter](maxKeys)

	return &RateLimiter{
		limiters: cache,
		r:        r,
		b:        b,
	}
}

// Allow reports whether key may make one more request now.
func (rl *RateLimiter) Allow(key string) bool {
	return rl.limiter(key).Allow()
}

// Len returns the number of buckets currently kept.
func (rl *RateLimiter) Len() int {
	return rl.limiters.Len()
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	l, ok := rl.limiters.Get(key)
	if !ok {
		l = rate.NewLimiter(rl.r, rl.b)
		rl.limiters.Add(key, l)
	}
	return l
}
