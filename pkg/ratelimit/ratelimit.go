// Package ratelimit provides a fixed-window request limiter keyed by client IP.
package ratelimit

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/rwadex/rwa-dex-api/internal/metrics"
	apperrors "github.com/rwadex/rwa-dex-api/pkg/app/errors"
	apphttp "github.com/rwadex/rwa-dex-api/pkg/app/http"
	"github.com/rwadex/rwa-dex-api/pkg/cache"
)

// Response headers.
const (
	HeaderLimit     = "X-RateLimit-Limit"
	HeaderRemaining = "X-RateLimit-Remaining"
)

// Limiter counts requests per client in the shared cache so that every
// replica enforces the same budget.
type Limiter struct {
	store  cache.Store
	limit  int64
	window time.Duration
	logger *zap.Logger
}

// New creates a limiter allowing limit requests per window.
func New(store cache.Store, limit int64, window time.Duration, logger *zap.Logger) *Limiter {
	return &Limiter{store: store, limit: limit, window: window, logger: logger}
}

// Handler enforces the limit per RemoteAddr, which chi's RealIP rewrites
// when the server trusts a proxy.
func (l *Limiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := clientIP(r)
		res, err := cache.CheckRateLimit(r.Context(), l.store, cache.RateLimitKey(client), l.limit, l.window)
		if err != nil {
			apphttp.DefaultErrorHandler(w, r, l.logger, cache.ServiceError(err))
			return
		}

		w.Header().Set(HeaderLimit, strconv.FormatInt(l.limit, 10))
		w.Header().Set(HeaderRemaining, strconv.FormatInt(res.Remaining, 10))
		if !res.Allowed {
			metrics.RateLimitedTotal.Inc()
			w.Header().Set("Retry-After", strconv.Itoa(int(l.window.Seconds())))
			apphttp.DefaultErrorHandler(w, r, l.logger,
				apperrors.RateLimitError("Too many requests from this IP, please try again later."))
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
