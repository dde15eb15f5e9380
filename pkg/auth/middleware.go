package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/rwadex/rwa-dex-api/pkg/app/errors"
	apphttp "github.com/rwadex/rwa-dex-api/pkg/app/http"
	"github.com/rwadex/rwa-dex-api/pkg/cache"
)

// RevocationChecker reports revoked session ids.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Middleware resolves bearer tokens into sessions.
type Middleware struct {
	tokens  *TokenIssuer
	revoked RevocationChecker
	logger  *zap.Logger
}

// NewMiddleware creates the session middleware.
func NewMiddleware(tokens *TokenIssuer, revoked RevocationChecker, logger *zap.Logger) *Middleware {
	return &Middleware{tokens: tokens, revoked: revoked, logger: logger}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// Authenticate resolves token into a live session.
func (m *Middleware) Authenticate(ctx context.Context, token string) (*Session, error) {
	s, err := m.tokens.Validate(token)
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return nil, apperrors.UnAuthorizedError(err, "Token expired")
		}
		return nil, apperrors.UnAuthorizedError(err, "Invalid token")
	}

	revoked, err := m.revoked.IsRevoked(ctx, s.TokenID)
	if err != nil {
		return nil, cache.ServiceError(err)
	}
	if revoked {
		return nil, apperrors.UnAuthorizedError(nil, "Token revoked")
	}
	return s, nil
}

// Required rejects requests without a valid, unrevoked session.
func (m *Middleware) Required(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := BearerToken(r)
		if !ok {
			apphttp.DefaultErrorHandler(w, r, m.logger, apperrors.UnAuthorizedError(nil, "No token provided"))
			return
		}
		s, err := m.Authenticate(r.Context(), token)
		if err != nil {
			apphttp.DefaultErrorHandler(w, r, m.logger, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
	})
}

// Optional attaches a session when the request carries a valid token and
// otherwise continues anonymously.
func (m *Middleware) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := BearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		s, err := m.Authenticate(r.Context(), token)
		if err != nil {
			m.logger.Debug("Continuing without session", zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
	})
}
