package middleware

import (
	"net/http"

	"github.com/RoyceAzure/lab/vendorportal/internal/pkg/limiter"
)

// NewRateLimitMiddleware token bucket限流，目前只掛在遠端名單proxy路由
func NewRateLimitMiddleware(bucket *limiter.TokenBucket) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !bucket.Allow() {
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
