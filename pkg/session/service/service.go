package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rwadex/rwa-dex-api/internal/metrics"
	apperrors "github.com/rwadex/rwa-dex-api/pkg/app/errors"
	"github.com/rwadex/rwa-dex-api/pkg/auth"
	"github.com/rwadex/rwa-dex-api/pkg/cache"
	"github.com/rwadex/rwa-dex-api/pkg/session"
)

// Authenticator resolves a bearer token into a live session.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.Session, error)
}

// Revoker ends a session before its token expires.
type Revoker interface {
	Revoke(ctx context.Context, s *auth.Session) error
}

// Service defines the wallet login flow
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	IssueNonce(ctx context.Context, address string) (*session.NonceResponse, error)
	Connect(ctx context.Context, req *session.ConnectRequest) (*session.ConnectResponse, error)
	Verify(ctx context.Context, token string) (*session.VerifyResponse, error)
	Disconnect(ctx context.Context, s *auth.Session) (*session.DisconnectResponse, error)
}

type sessionService struct {
	store    cache.Store
	tokens   *auth.TokenIssuer
	authn    Authenticator
	revoker  Revoker
	nonceTTL time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

// NewService creates the wallet login service.
func NewService(
	store cache.Store,
	tokens *auth.TokenIssuer,
	authn Authenticator,
	revoker Revoker,
	nonceTTL time.Duration,
	logger *zap.Logger,
) Service {
	return &sessionService{
		store:    store,
		tokens:   tokens,
		authn:    authn,
		revoker:  revoker,
		nonceTTL: nonceTTL,
		now:      time.Now,
		logger:   logger,
	}
}

// IssueNonce stores a fresh nonce for address, replacing any pending one.
func (s *sessionService) IssueNonce(ctx context.Context, address string) (*session.NonceResponse, error) {
	if !auth.ValidateEVMAddress(address) {
		metrics.AuthAttemptsTotal.WithLabelValues("nonce", "rejected").Inc()
		return nil, apperrors.BadRequestError(nil, "Invalid address")
	}

	buf := make([]byte, session.NonceBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, apperrors.GeneralError(fmt.Errorf("generate nonce: %w", err))
	}
	nonce := hex.EncodeToString(buf)

	if err := s.store.Set(ctx, cache.NonceKey(address), nonce, s.nonceTTL); err != nil {
		return nil, cache.ServiceError(err)
	}
	metrics.AuthAttemptsTotal.WithLabelValues("nonce", "issued").Inc()
	return &session.NonceResponse{
		Nonce:   nonce,
		Message: session.LoginMessage(nonce, s.now()),
	}, nil
}

// Connect exchanges a signed login message for a session token. A nonce is
// consumed at most once, so concurrent replays of one signature yield a
// single token.
func (s *sessionService) Connect(ctx context.Context, req *session.ConnectRequest) (*session.ConnectResponse, error) {
	resp, err := s.connect(ctx, req)
	status := "success"
	if err != nil {
		status = "rejected"
	}
	metrics.AuthAttemptsTotal.WithLabelValues("connect", status).Inc()
	return resp, err
}

func (s *sessionService) connect(ctx context.Context, req *session.ConnectRequest) (*session.ConnectResponse, error) {
	if req == nil || req.Address == "" || req.Signature == "" || req.Message == "" {
		return nil, apperrors.BadRequestError(nil, "Address, signature, and message are required")
	}
	if !auth.ValidateEVMAddress(req.Address) {
		return nil, apperrors.BadRequestError(nil, "Invalid address")
	}
	nonce, ok := session.NonceFromMessage(req.Message)
	if !ok {
		return nil, apperrors.BadRequestError(nil, "Invalid message format")
	}

	key := cache.NonceKey(req.Address)
	stored, found, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, cache.ServiceError(err)
	}
	if !found || stored != nonce {
		return nil, apperrors.UnAuthorizedError(nil, "Invalid or expired nonce")
	}

	recovered, err := auth.VerifyEIP191Signature(req.Message, req.Signature)
	if err != nil {
		return nil, apperrors.InvalidSignatureError(err, "Invalid signature")
	}
	if !auth.SameAddress(recovered.Hex(), req.Address) {
		return nil, apperrors.InvalidSignatureError(
			fmt.Errorf("signature recovered %s, expected %s", recovered.Hex(), req.Address),
			"Invalid signature",
		)
	}

	deleted, err := s.store.Delete(ctx, key)
	if err != nil {
		return nil, cache.ServiceError(err)
	}
	if !deleted {
		return nil, apperrors.UnAuthorizedError(errors.New("nonce consumed concurrently"), "Invalid or expired nonce")
	}

	token, sess, err := s.tokens.Issue(req.Address, nonce)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}
	return &session.ConnectResponse{
		Token:     token,
		Address:   strings.ToLower(req.Address),
		ExpiresIn: session.FormatExpiry(s.tokens.Expiry()),
		ExpiresAt: sess.ExpiresAt,
	}, nil
}

// Verify reports the session behind token.
func (s *sessionService) Verify(ctx context.Context, token string) (*session.VerifyResponse, error) {
	if token == "" {
		return nil, apperrors.UnAuthorizedError(nil, "No token provided")
	}
	sess, err := s.authn.Authenticate(ctx, token)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("verify", "rejected").Inc()
		return nil, err
	}
	metrics.AuthAttemptsTotal.WithLabelValues("verify", "success").Inc()
	return &session.VerifyResponse{
		Valid:     true,
		Address:   sess.Address,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}

// Disconnect revokes the session for the rest of its lifetime.
func (s *sessionService) Disconnect(ctx context.Context, sess *auth.Session) (*session.DisconnectResponse, error) {
	if sess == nil {
		return nil, apperrors.UnAuthorizedError(nil, "Authentication required")
	}
	if err := s.revoker.Revoke(ctx, sess); err != nil {
		return nil, cache.ServiceError(err)
	}
	metrics.AuthAttemptsTotal.WithLabelValues("disconnect", "success").Inc()
	return &session.DisconnectResponse{Message: "Successfully disconnected"}, nil
}
