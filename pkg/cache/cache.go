// Package cache provides the key-value store behind response caches, login
// nonces, session revocations and rate limit counters.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/rwadex/rwa-dex-api/pkg/app/errors"
)

// ErrUnavailable matches every error caused by an unreachable backend.
var ErrUnavailable = errors.New("cache unavailable")

// ErrNotInteger is returned by Increment when the key holds a non-counter value.
var ErrNotInteger = errors.New("value is not an integer")

// Store is a string key-value store with per-key expiry.
// A ttl of zero stores the value without expiry.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Delete removes key and reports whether it existed. Callers rely on the
	// boolean for at-most-once consumption.
	Delete(ctx context.Context, key string) (bool, error)
	Exists(ctx context.Context, key string) (bool, error)
	// Increment adds one to the counter at key. The window is applied as the
	// key's expiry only when the increment creates the counter.
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}

// UnavailableError wraps a backend failure for a single operation.
type UnavailableError struct {
	Op  string
	Key string
	Err error
}

func (e *UnavailableError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("cache %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("cache %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrUnavailable) true.
func (e *UnavailableError) Is(target error) bool { return target == ErrUnavailable }

func unavailable(op, key string, err error) error {
	return &UnavailableError{Op: op, Key: key, Err: err}
}

// ServiceError maps a cache failure to the API error returned to clients.
// Only an unreachable backend is reported as CACHE_UNAVAILABLE.
func ServiceError(err error) error {
	if errors.Is(err, ErrUnavailable) {
		return apperrors.CacheUnavailableError(err)
	}
	return apperrors.GeneralError(err)
}

type options struct {
	now func() time.Time
}

// Option configures the memory and postgres backends.
type Option func(*options)

// WithClock replaces the wall clock used for expiry decisions.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func applyOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
