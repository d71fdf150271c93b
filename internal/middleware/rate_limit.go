package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"log/slog"

	"golang.org/x/time/rate"
)

type caller struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiter struct {
	sync.RWMutex
	callers map[string]*caller
	limit   rate.Limit
	burst   int
	ttl     time.Duration
}

// Limit throttles report submissions per acting user, falling back to
// the remote IP when the request carries no user header. Without this a
// single client could spam-merge a zone straight into CRITICAL.
func Limit(rps, burst int, ttl time.Duration, logger *slog.Logger) func(http.Handler) http.Handler {
	l := &rateLimiter{
		callers: make(map[string]*caller),
		limit:   rate.Limit(rps),
		burst:   burst,
		ttl:     ttl,
	}

	go l.cleanupCallers()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-User-ID")
			if key == "" {
				ip, _, err := net.SplitHostPort(r.RemoteAddr)
				if err != nil {
					logger.Error("rate limiter addr parse error", slog.String("error", err.Error()))
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}
				key = ip
			}

			if !l.getCaller(key).Allow() {
				logger.Warn("rate limit exceeded", slog.String("caller", key))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (l *rateLimiter) getCaller(key string) *rate.Limiter {
	l.RLock()
	c, exists := l.callers[key]
	l.RUnlock()

	if !exists {
		limiter := rate.NewLimiter(l.limit, l.burst)
		l.Lock()
		l.callers[key] = &caller{limiter, time.Now()}
		l.Unlock()
		return limiter
	}

	c.lastSeen = time.Now()
	return c.limiter
}

func (l *rateLimiter) cleanupCallers() {
	for {
		time.Sleep(time.Minute)
		l.Lock()
		for key, c := range l.callers {
			if time.Since(c.lastSeen) > l.ttl {
				delete(l.callers, key)
			}
		}
		l.Unlock()
	}
}
