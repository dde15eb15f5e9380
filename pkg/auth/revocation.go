package auth

import (
	"context"
	"time"

	"github.com/rwadex/rwa-dex-api/pkg/cache"
)

// RevocationList records logged-out session ids until their tokens expire.
type RevocationList struct {
	store cache.Store
	now   func() time.Time
}

// NewRevocationList stores revocations in s.
func NewRevocationList(s cache.Store) *RevocationList {
	return &RevocationList{store: s, now: time.Now}
}

// Revoke marks the session as revoked for the remainder of its lifetime.
func (l *RevocationList) Revoke(ctx context.Context, s *Session) error {
	ttl := s.ExpiresAt.Sub(l.now())
	if ttl <= 0 {
		return nil
	}
	return l.store.Set(ctx, cache.RevokedSessionKey(s.TokenID), "1", ttl)
}

// IsRevoked reports whether the session id was revoked.
func (l *RevocationList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return l.store.Exists(ctx, cache.RevokedSessionKey(tokenID))
}
