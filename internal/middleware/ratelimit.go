package middleware

import (
	"net/http"
	"strconv"

	"github.com/jekabolt/grbpwr-stats/internal/dto"
	"github.com/jekabolt/grbpwr-stats/internal/ratelimit"
)

// RateLimit throttles requests per resolved shop, falling back to the
// client ip. It must run after ShopGate.
func RateLimit(l *ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := ShopIDFromContext(r.Context())
			if key == "" {
				key = "ip:" + GetClientIP(r.Context())
			}
			if !l.Allow(key) {
				_, reset := l.Remaining(key)
				w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))
				writeError(w, r, http.StatusTooManyRequests, dto.ErrorRateLimited, "too many report requests, please try again later")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
