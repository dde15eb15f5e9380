package cache

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/uptrace/bun"
)

const liveCondition = "(expires_at IS NULL OR expires_at > ?)"

// incrementQuery upserts a counter. An expired row restarts at 1 with a new
// window; a live row keeps its expiry.
const incrementQuery = `
INSERT INTO cache_entries (key, value, expires_at, updated_at)
VALUES (?, '1', ?, ?)
ON CONFLICT (key) DO UPDATE SET
	value = CASE
		WHEN cache_entries.expires_at IS NOT NULL AND cache_entries.expires_at <= EXCLUDED.updated_at THEN '1'
		ELSE (cache_entries.value::bigint + 1)::text
	END,
	expires_at = CASE
		WHEN cache_entries.expires_at IS NOT NULL AND cache_entries.expires_at <= EXCLUDED.updated_at THEN EXCLUDED.expires_at
		ELSE cache_entries.expires_at
	END,
	updated_at = EXCLUDED.updated_at
RETURNING value`

// PGStore is a Store backed by the cache_entries table. Expired rows are
// invisible to reads and removed by PurgeExpired.
type PGStore struct {
	db  *bun.DB
	now func() time.Time
}

// NewPGStore wraps an open database; the schema comes from the cachedb migrations.
func NewPGStore(db *bun.DB, opts ...Option) *PGStore {
	return &PGStore{db: db, now: applyOptions(opts).now}
}

func (s *PGStore) expiry(ttl time.Duration) *time.Time {
	if ttl <= 0 {
		return nil
	}
	t := s.now().Add(ttl).UTC()
	return &t
}

func (s *PGStore) Get(ctx context.Context, key string) (string, bool, error) {
	dao := new(EntryDao)
	err := s.db.NewSelect().
		Model(dao).
		Column("value").
		Where("key = ?", key).
		Where(liveCondition, s.now().UTC()).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, unavailable("get", key, err)
	}
	return dao.Value, true, nil
}

func (s *PGStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	dao := &EntryDao{
		Key:       key,
		Value:     value,
		ExpiresAt: s.expiry(ttl),
		UpdatedAt: s.now().UTC(),
	}
	_, err := s.db.NewInsert().
		Model(dao).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Set("expires_at = EXCLUDED.expires_at").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return unavailable("set", key, err)
	}
	return nil
}

func (s *PGStore) Delete(ctx context.Context, key string) (bool, error) {
	res, err := s.db.NewDelete().
		Model((*EntryDao)(nil)).
		Where("key = ?", key).
		Where(liveCondition, s.now().UTC()).
		Exec(ctx)
	if err != nil {
		return false, unavailable("delete", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, unavailable("delete", key, err)
	}
	return n > 0, nil
}

func (s *PGStore) Exists(ctx context.Context, key string) (bool, error) {
	ok, err := s.db.NewSelect().
		Model((*EntryDao)(nil)).
		Where("key = ?", key).
		Where(liveCondition, s.now().UTC()).
		Exists(ctx)
	if err != nil {
		return false, unavailable("exists", key, err)
	}
	return ok, nil
}

func (s *PGStore) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	var raw string
	err := s.db.NewRaw(incrementQuery, key, s.expiry(window), s.now().UTC()).Scan(ctx, &raw)
	if err != nil {
		return 0, unavailable("increment", key, err)
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ErrNotInteger
	}
	return n, nil
}

// PurgeExpired deletes expired rows and returns how many were removed.
func (s *PGStore) PurgeExpired(ctx context.Context) (int64, error) {
	res, err := s.db.NewDelete().
		Model((*EntryDao)(nil)).
		Where("expires_at IS NOT NULL AND expires_at <= ?", s.now().UTC()).
		Exec(ctx)
	if err != nil {
		return 0, unavailable("purge", "", err)
	}
	return res.RowsAffected()
}

func (s *PGStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return unavailable("ping", "", err)
	}
	return nil
}

func (s *PGStore) Close() error {
	return s.db.Close()
}
