package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/supafox/supafox/internal/logging"
	"github.com/supafox/supafox/internal/security"
)

// RateLimit configures a RateLimiter.
type RateLimit struct {
	RequestsPerMinute int
	Burst             int
	// TrustedProxies may set the client address through X-Forwarded-For.
	// Without them the limiter keys on the connection's remote address.
	TrustedProxies security.TrustedProxies
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	limit   rate.Limit
	burst   int
	proxies security.TrustedProxies
	logger  logging.Logger
	now     func() time.Time
	idleTTL time.Duration

	mu      sync.Mutex
	buckets map[string]*bucket

	stopOnce sync.Once
	done     chan struct{}
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter starts a limiter and its idle bucket sweeper. Call Stop when
// done with it.
func NewRateLimiter(cfg RateLimit, logger logging.Logger) *RateLimiter {
	rl := newRateLimiter(cfg, logger, time.Now)
	go rl.sweep(time.Minute)
	return rl
}

func newRateLimiter(cfg RateLimit, logger logging.Logger, now func() time.Time) *RateLimiter {
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = 60
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &RateLimiter{
		limit:   rate.Limit(float64(cfg.RequestsPerMinute) / 60),
		burst:   cfg.Burst,
		proxies: cfg.TrustedProxies,
		logger:  logger.WithComponent("ratelimit"),
		now:     now,
		idleTTL: 10 * time.Minute,
		buckets: make(map[string]*bucket),
		done:    make(chan struct{}),
	}
}

// Allow takes a token for key. When none is left it reports how long until
// the next one.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.buckets[key] = b
	}
	b.lastSeen = now

	if b.limiter.AllowN(now, 1) {
		return true, 0
	}
	missing := 1 - b.limiter.TokensAt(now)
	return false, time.Duration(missing / float64(rl.limit) * float64(time.Second))
}

// Middleware rejects over-limit clients with 429 and a Retry-After header.
func (rl *RateLimiter) Middleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := rl.proxies.ClientIP(r)
			ok, wait := rl.Allow(ip)
			if !ok {
				seconds := int(math.Ceil(wait.Seconds()))
				if seconds < 1 {
					seconds = 1
				}
				rl.logger.Warn(r.Context(), nil, "Rate limit exceeded",
					"ip", logging.SanitizeForLog(ip),
					"path", r.URL.Path)
				w.Header().Set("Retry-After", strconv.Itoa(seconds))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Len is the number of tracked clients.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.buckets)
}

func (rl *RateLimiter) sweep(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictIdle()
		case <-rl.done:
			return
		}
	}
}

// evictIdle drops buckets that have been idle long enough to be full again.
func (rl *RateLimiter) evictIdle() {
	cutoff := rl.now().Add(-rl.idleTTL)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, b := range rl.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(rl.buckets, key)
		}
	}
}

// Stop ends the sweeper. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.done) })
}
