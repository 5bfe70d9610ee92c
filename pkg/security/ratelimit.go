package security

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/GlebRadaev/starboard/pkg/auth"
	"github.com/GlebRadaev/starboard/pkg/utils"
)

// RateLimiter keeps a token bucket per client. Buckets of clients that stay
// quiet for two windows are evicted, and at most capacity buckets are kept.
type RateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
}

func NewRateLimiter(requests int, window time.Duration, capacity int) *RateLimiter {
	return &RateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](capacity, nil, 2*window),
		rate:     rate.Limit(float64(requests) / window.Seconds()),
		burst:    requests,
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
	}
	// Add refreshes the entry's expiry on every request.
	rl.limiters.Add(key, limiter)
	return limiter
}

// Allow reports whether key may proceed now, and otherwise how long to wait.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	reservation := rl.getLimiter(key).Reserve()
	if delay := reservation.Delay(); delay > 0 {
		reservation.Cancel()
		return false, delay
	}
	return true, 0
}

func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)

		if ok, retryAfter := rl.Allow(key); !ok {
			zap.L().Warn("Rate limit exceeded",
				zap.String("key", key),
				zap.String("path", r.URL.Path),
				zap.String("method", r.Method),
			)
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			utils.RespondWithError(w, http.StatusTooManyRequests, "Too many requests")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	if tgID, ok := auth.UserIDFromContext(r.Context()); ok {
		return "user:" + strconv.FormatInt(tgID, 10)
	}
	return "ip:" + clientIP(r)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
