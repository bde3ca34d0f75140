package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"patitas-eternas/internal/platform/respond"

	"golang.org/x/time/rate"
)

// RateLimiter limita por cliente (user id si hay claims, si no IP).
// Se aplica solo a los POST públicos: solicitudes, registro y pagos.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*visitor
	rate     rate.Limit
	burst    int
	ttl      time.Duration
	now      func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter: rps <= 0 desactiva el límite.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		limiters: make(map[string]*visitor),
		rate:     rate.Limit(rps),
		burst:    burst,
		ttl:      10 * time.Minute,
		now:      time.Now,
	}
}

func (rl *RateLimiter) enabled() bool {
	return rl != nil && rl.rate > 0
}

func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	v, ok := rl.limiters[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = v
	}
	v.lastSeen = now

	// barrido simple: sin goroutine de limpieza
	if len(rl.limiters) > 10000 {
		for k, other := range rl.limiters {
			if now.Sub(other.lastSeen) > rl.ttl {
				delete(rl.limiters, k)
			}
		}
	}
	return v.limiter
}

func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	if !rl.enabled() {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := CallerFrom(r.Context()).ID
		if key == "" {
			key = clientIP(r)
		}

		if !rl.limiterFor(key).Allow() {
			LoggerFrom(r.Context()).Warn("rate limit exceeded", map[string]any{"key": key})
			w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(rl.rate)))
			respond.Message(w, http.StatusTooManyRequests, "Demasiadas solicitudes, intenta más tarde")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func retryAfterSeconds(l rate.Limit) int {
	if l <= 0 || l >= 1 {
		return 1
	}
	return int(1/float64(l)) + 1
}

// clientIP: chimw.RealIP ya reescribió RemoteAddr si venía X-Forwarded-For.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
