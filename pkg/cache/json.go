package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rwadex/rwa-dex-api/internal/metrics"
)

// GetJSON loads key into dst. It reports false on a miss.
func GetJSON(ctx context.Context, s Store, key string, dst any) (bool, error) {
	class := KeyClass(key)
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		metrics.CacheRequestsTotal.WithLabelValues(class, "error").Inc()
		return false, err
	}
	if !ok {
		metrics.CacheRequestsTotal.WithLabelValues(class, "miss").Inc()
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		// A payload from an older schema is treated as a miss.
		metrics.CacheRequestsTotal.WithLabelValues(class, "miss").Inc()
		return false, nil
	}
	metrics.CacheRequestsTotal.WithLabelValues(class, "hit").Inc()
	return true, nil
}

// SetJSON stores v encoded as JSON under key.
func SetJSON(ctx context.Context, s Store, key string, v any, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode cache value %q: %w", key, err)
	}
	return s.Set(ctx, key, string(raw), ttl)
}
