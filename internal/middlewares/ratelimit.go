package middlewares

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sbilibin2017/job-portal/internal/logger"
	"github.com/sbilibin2017/job-portal/internal/ratelimit"
)

// Limiter defines the minimal limiter interface needed by the middleware
type Limiter interface {
	Allow(ctx context.Context, clientIP string) (*ratelimit.Result, error)
	Policy() ratelimit.Policy
}

// RateLimitResponse is the JSON body returned on 429.
type RateLimitResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// RateLimitMiddleware returns a middleware that counts requests per client
// IP against one fixed-window policy. Standard RateLimit-* headers are set
// on every response; legacy X-RateLimit-* headers are not. A store failure
// lets the request through (the limiter protects capacity, it is not an
// auth boundary).
func RateLimitMiddleware(limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			res, err := limiter.Allow(ctx, clientIP(r))
			if err != nil {
				logger.Log.Errorw("rate limit store failure", "policy", limiter.Policy().Name, "error", err)
				next.ServeHTTP(w, r)
				return
			}

			reset := time.Until(res.ResetAt).Round(time.Second) / time.Second
			if reset < 0 {
				reset = 0
			}
			w.Header().Set("RateLimit-Limit", strconv.FormatInt(res.Limit, 10))
			w.Header().Set("RateLimit-Remaining", strconv.FormatInt(res.Remaining, 10))
			w.Header().Set("RateLimit-Reset", strconv.FormatInt(int64(reset), 10))

			if !res.Allowed {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(RateLimitResponse{
					Status:  http.StatusTooManyRequests,
					Message: limiter.Policy().Message,
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP picks the client address, preferring proxy headers.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
