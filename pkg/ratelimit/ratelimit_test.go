package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rwadex/rwa-dex-api/pkg/cache"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func request(h http.Handler, remote string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/assets", nil)
	req.RemoteAddr = remote
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestLimiter_BlocksAfterLimit(t *testing.T) {
	now := time.Now()
	store := cache.NewMemoryStore(cache.WithClock(func() time.Time { return now }))
	h := New(store, 3, 15*time.Minute, zap.NewNop()).Handler(http.HandlerFunc(okHandler))

	for i := range 3 {
		rec := request(h, "10.0.0.1:5555")
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i+1)
		assert.Equal(t, "3", rec.Header().Get(HeaderLimit))
		assert.Equal(t, []string{"2", "1", "0"}[i], rec.Header().Get(HeaderRemaining))
	}

	rec := request(h, "10.0.0.1:6666")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get(HeaderRemaining))
	assert.Equal(t, "900", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), `"RATE_LIMIT_EXCEEDED"`)

	// Other clients have their own budget.
	assert.Equal(t, http.StatusOK, request(h, "10.0.0.2:5555").Code)

	// A new window starts after expiry.
	now = now.Add(15*time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, request(h, "10.0.0.1:5555").Code)
}

func TestLimiter_CacheDown(t *testing.T) {
	store := cache.NewMemoryStore()
	require.NoError(t, store.Close())
	h := New(store, 3, time.Minute, zap.NewNop()).Handler(http.HandlerFunc(okHandler))

	rec := request(h, "10.0.0.1:5555")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"CACHE_UNAVAILABLE"`)
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.168.1.5:1234"
	assert.Equal(t, "192.168.1.5", clientIP(r))
	r.RemoteAddr = "192.168.1.5"
	assert.Equal(t, "192.168.1.5", clientIP(r))
	r.RemoteAddr = "[::1]:80"
	assert.Equal(t, "::1", clientIP(r))
}
