package cache

import (
	"context"
	"time"
)

// RateLimitResult is the outcome of one counted request.
type RateLimitResult struct {
	Allowed   bool
	Count     int64
	Remaining int64
}

// CheckRateLimit counts one request against key within a fixed window.
// The window starts with the first request and is never extended.
func CheckRateLimit(ctx context.Context, s Store, key string, limit int64, window time.Duration) (RateLimitResult, error) {
	count, err := s.Increment(ctx, key, window)
	if err != nil {
		return RateLimitResult{}, err
	}
	return RateLimitResult{
		Allowed:   count <= limit,
		Count:     count,
		Remaining: max(0, limit-count),
	}, nil
}
