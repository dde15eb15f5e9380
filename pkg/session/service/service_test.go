package service

import (
	"context"
	"crypto/ecdsa"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/rwadex/rwa-dex-api/pkg/app/errors"
	"github.com/rwadex/rwa-dex-api/pkg/auth"
	"github.com/rwadex/rwa-dex-api/pkg/cache"
	"github.com/rwadex/rwa-dex-api/pkg/session"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type fixture struct {
	svc   Service
	store *cache.MemoryStore
	clock *clock
	key   *ecdsa.PrivateKey
	addr  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clk := &clock{t: time.Now()}
	store := cache.NewMemoryStore(cache.WithClock(clk.Now))
	tokens := auth.NewTokenIssuer("0123456789abcdef0123456789abcdef", "rwa-dex-api", 168*time.Hour)
	revoked := auth.NewRevocationList(store)
	authn := auth.NewMiddleware(tokens, revoked, zap.NewNop())

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	return &fixture{
		svc:   NewService(store, tokens, authn, revoked, 300*time.Second, zap.NewNop()),
		store: store,
		clock: clk,
		key:   key,
		addr:  crypto.PubkeyToAddress(key.PublicKey).Hex(),
	}
}

func (f *fixture) signedRequest(t *testing.T, key *ecdsa.PrivateKey) *session.ConnectRequest {
	t.Helper()
	n, err := f.svc.IssueNonce(context.Background(), f.addr)
	require.NoError(t, err)
	sig, err := auth.SignEIP191(n.Message, key)
	require.NoError(t, err)
	return &session.ConnectRequest{Address: f.addr, Signature: sig, Message: n.Message}
}

func requireCategory(t *testing.T, err error, cat apperrors.Category, message string) *apperrors.ServiceError {
	t.Helper()
	var svcErr *apperrors.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, cat, svcErr.Category)
	if message != "" {
		assert.Equal(t, message, svcErr.Message)
	}
	return svcErr
}

func TestIssueNonce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	n, err := f.svc.IssueNonce(ctx, f.addr)
	require.NoError(t, err)
	assert.Len(t, n.Nonce, 2*session.NonceBytes)
	assert.Contains(t, n.Message, "Nonce: "+n.Nonce+"\n")

	stored, ok, err := f.store.Get(ctx, cache.NonceKey(strings.ToLower(f.addr)))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, n.Nonce, stored)

	again, err := f.svc.IssueNonce(ctx, f.addr)
	require.NoError(t, err)
	assert.NotEqual(t, n.Nonce, again.Nonce)

	_, err = f.svc.IssueNonce(ctx, "0x1234")
	requireCategory(t, err, apperrors.CategoryDataError, "Invalid address")
}

func TestConnect_ConsumesNonceOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req := f.signedRequest(t, f.key)

	resp, err := f.svc.Connect(ctx, req)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, strings.ToLower(f.addr), resp.Address)
	assert.Equal(t, "7d", resp.ExpiresIn)

	verified, err := f.svc.Verify(ctx, resp.Token)
	require.NoError(t, err)
	assert.True(t, verified.Valid)
	assert.Equal(t, strings.ToLower(f.addr), verified.Address)
	assert.Equal(t, resp.ExpiresAt, verified.ExpiresAt)

	_, err = f.svc.Connect(ctx, req)
	requireCategory(t, err, apperrors.CategoryUnauthorized, "Invalid or expired nonce")
}

func TestConnect_ConcurrentReplayYieldsOneToken(t *testing.T) {
	f := newFixture(t)
	req := f.signedRequest(t, f.key)

	var (
		wg        sync.WaitGroup
		successes atomic.Int32
	)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.svc.Connect(context.Background(), req); err == nil {
				successes.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 1, successes.Load())
}

func TestConnect_WrongSigner(t *testing.T) {
	f := newFixture(t)
	other, err := crypto.GenerateKey()
	require.NoError(t, err)
	req := f.signedRequest(t, other)

	_, err = f.svc.Connect(context.Background(), req)
	svcErr := requireCategory(t, err, apperrors.CategoryUnauthorized, "Invalid signature")
	assert.Equal(t, apperrors.CodeInvalidSignature, svcErr.ErrorCode())

	// The nonce survives a failed attempt.
	ok, err := f.store.Exists(context.Background(), cache.NonceKey(f.addr))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConnect_MalformedSignature(t *testing.T) {
	f := newFixture(t)
	req := f.signedRequest(t, f.key)
	req.Signature = "0x1234"

	_, err := f.svc.Connect(context.Background(), req)
	svcErr := requireCategory(t, err, apperrors.CategoryUnauthorized, "Invalid signature")
	assert.Equal(t, apperrors.CodeInvalidSignature, svcErr.ErrorCode())
}

func TestConnect_NonceMismatch(t *testing.T) {
	f := newFixture(t)
	req := f.signedRequest(t, f.key)

	// A newer nonce replaces the signed one.
	_, err := f.svc.IssueNonce(context.Background(), f.addr)
	require.NoError(t, err)

	_, err = f.svc.Connect(context.Background(), req)
	requireCategory(t, err, apperrors.CategoryUnauthorized, "Invalid or expired nonce")
}

func TestConnect_NonceExpired(t *testing.T) {
	f := newFixture(t)
	req := f.signedRequest(t, f.key)
	f.clock.Advance(301 * time.Second)

	_, err := f.svc.Connect(context.Background(), req)
	requireCategory(t, err, apperrors.CategoryUnauthorized, "Invalid or expired nonce")
}

func TestConnect_BadRequests(t *testing.T) {
	f := newFixture(t)
	good := f.signedRequest(t, f.key)

	cases := map[string]struct {
		req     *session.ConnectRequest
		message string
	}{
		"nil":             {nil, "Address, signature, and message are required"},
		"missing address": {&session.ConnectRequest{Signature: good.Signature, Message: good.Message}, "Address, signature, and message are required"},
		"missing sig":     {&session.ConnectRequest{Address: good.Address, Message: good.Message}, "Address, signature, and message are required"},
		"bad address":     {&session.ConnectRequest{Address: "0xnope", Signature: good.Signature, Message: good.Message}, "Invalid address"},
		"no nonce":        {&session.ConnectRequest{Address: good.Address, Signature: good.Signature, Message: "hello"}, "Invalid message format"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.svc.Connect(context.Background(), tc.req)
			requireCategory(t, err, apperrors.CategoryDataError, tc.message)
		})
	}
}

func TestConnect_CacheDown(t *testing.T) {
	f := newFixture(t)
	req := f.signedRequest(t, f.key)
	require.NoError(t, f.store.Close())

	_, err := f.svc.Connect(context.Background(), req)
	requireCategory(t, err, apperrors.CategoryCacheUnavailable, "")
}

func TestVerify_Rejects(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Verify(context.Background(), "")
	requireCategory(t, err, apperrors.CategoryUnauthorized, "No token provided")

	_, err = f.svc.Verify(context.Background(), "not.a.jwt")
	requireCategory(t, err, apperrors.CategoryUnauthorized, "Invalid token")
}

func TestDisconnect_RevokesSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	resp, err := f.svc.Connect(ctx, f.signedRequest(t, f.key))
	require.NoError(t, err)

	tokens := auth.NewTokenIssuer("0123456789abcdef0123456789abcdef", "rwa-dex-api", 168*time.Hour)
	sess, err := tokens.Validate(resp.Token)
	require.NoError(t, err)

	out, err := f.svc.Disconnect(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, "Successfully disconnected", out.Message)

	_, err = f.svc.Verify(ctx, resp.Token)
	requireCategory(t, err, apperrors.CategoryUnauthorized, "Token revoked")

	_, err = f.svc.Disconnect(ctx, nil)
	requireCategory(t, err, apperrors.CategoryUnauthorized, "")
}
