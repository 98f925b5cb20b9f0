package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-stats/internal/dto"
	"github.com/jekabolt/grbpwr-stats/internal/ratelimit"
	"github.com/stretchr/testify/assert"
)

func TestRateLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := RateLimit(ratelimit.NewLimiter(ctx, time.Minute, 1))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	serve := func(shopID string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if shopID != "" {
			req = req.WithContext(WithShopID(req.Context(), shopID))
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusNoContent, serve("s1").Code)
	rec := serve("s1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, dto.ErrorRateLimited, decodeError(t, rec).Error)

	assert.Equal(t, http.StatusNoContent, serve("s2").Code)

	// without a shop the client ip is the key
	assert.Equal(t, http.StatusNoContent, serve("").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve("").Code)
}
