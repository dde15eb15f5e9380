package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTypeWalletAuth marks tokens issued by the wallet login flow.
const TokenTypeWalletAuth = "wallet_auth"

// Token validation errors.
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// SessionClaims are the claims carried by a session token.
type SessionClaims struct {
	Address string `json:"address"`
	Nonce   string `json:"nonce"`
	Type    string `json:"type"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and validates HS256 session tokens.
type TokenIssuer struct {
	secret []byte
	issuer string
	expiry time.Duration
	now    func() time.Time
}

// NewTokenIssuer creates an issuer for tokens valid for expiry.
func NewTokenIssuer(secret, issuer string, expiry time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		issuer: issuer,
		expiry: expiry,
		now:    time.Now,
	}
}

// Expiry returns the configured token lifetime.
func (t *TokenIssuer) Expiry() time.Duration {
	return t.expiry
}

// Issue signs a token for address. The returned session carries the token id
// used for revocation.
func (t *TokenIssuer) Issue(address, nonce string) (string, *Session, error) {
	now := t.now().UTC().Truncate(time.Second)
	claims := &SessionClaims{
		Address: strings.ToLower(address),
		Nonce:   nonce,
		Type:    TokenTypeWalletAuth,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    t.issuer,
			Subject:   strings.ToLower(address),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.expiry)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, claims.session(), nil
}

// Validate checks signature, issuer, expiry and token type.
func (t *TokenIssuer) Validate(tokenString string) (*Session, error) {
	claims := new(SessionClaims)
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if claims.Type != TokenTypeWalletAuth {
		return nil, fmt.Errorf("%w: unexpected token type %q", ErrTokenInvalid, claims.Type)
	}
	if claims.ID == "" || !ValidateEVMAddress(claims.Address) {
		return nil, fmt.Errorf("%w: incomplete claims", ErrTokenInvalid)
	}
	return claims.session(), nil
}

func (c *SessionClaims) session() *Session {
	s := &Session{
		Address: c.Address,
		Nonce:   c.Nonce,
		TokenID: c.ID,
	}
	if c.IssuedAt != nil {
		s.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		s.ExpiresAt = c.ExpiresAt.Time
	}
	return s
}
