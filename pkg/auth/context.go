package auth

import (
	"context"
	"time"
)

type contextKey string

// ContextKeySession is the context key for the verified wallet session
const ContextKeySession contextKey = "wallet_session"

// Session is a verified wallet session.
type Session struct {
	Address   string
	Nonce     string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// WithSession adds the session to the context
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ContextKeySession, s)
}

// SessionFromContext retrieves the session from the context
func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ContextKeySession).(*Session)
	return s, ok && s != nil
}

// AddressFromContext returns the lowercase wallet address of the session, or "".
func AddressFromContext(ctx context.Context) string {
	if s, ok := SessionFromContext(ctx); ok {
		return s.Address
	}
	return ""
}
