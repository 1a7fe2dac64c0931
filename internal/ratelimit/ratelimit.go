// Package ratelimit throttles clients with one token bucket per remote IP.
package ratelimit

import (
	"net"
	"net/http"
	"sync"
	"time"

	"campus-salary/internal/handlers"

	"golang.org/x/time/rate"
)

// DefaultIdleTTL is how long a client's bucket survives without requests.
const DefaultIdleTTL = 3 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter hands out a token bucket per client key. Buckets idle for
// longer than idleTTL are dropped on a later lookup, so the map stays
// bounded by the number of recently active clients.
type IPRateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	r         rate.Limit // tokens per second
	b         int        // burst
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		visitors:  make(map[string]*visitor),
		r:         r,
		b:         b,
		idleTTL:   DefaultIdleTTL,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// Limiter returns the bucket for key, creating it on first use.
func (l *IPRateLimiter) Limiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.idleTTL {
		l.sweep(now)
	}

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.r, l.b)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter
}

// sweep drops idle visitors. Callers hold l.mu.
func (l *IPRateLimiter) sweep(now time.Time) {
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) >= l.idleTTL {
			delete(l.visitors, key)
		}
	}
	l.lastSweep = now
}

// Len reports the number of tracked clients.
func (l *IPRateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}

// Allow reports whether a request from key may proceed now.
func (l *IPRateLimiter) Allow(key string) bool {
	return l.Limiter(key).Allow()
}

// Middleware rejects requests over the per-IP limit with 429. The key is
// r.RemoteAddr, which is the TCP peer unless a trusted RealIP middleware
// ran earlier.
func (l *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(clientIP(r)) {
			w.Header().Set("Retry-After", "1")
			handlers.WriteError(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
