// Package client is a typed Go client for the RWA DEX API.
package client

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/rwadex/rwa-dex-api/pkg/asset"
	"github.com/rwadex/rwa-dex-api/pkg/auth"
	"github.com/rwadex/rwa-dex-api/pkg/session"
)

const (
	defaultHTTPTimeout = 30 * time.Second

	// Limit non-JSON error body reads.
	maxErrBodyBytes = 4096
)

// Client calls the API over HTTP. It is safe for concurrent use; the session
// token obtained by Connect or Login is shared by all calls.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithToken starts the client with an existing session token.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New creates a client for the server at baseURL, e.g. "http://localhost:3001".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q must be http or https", baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Token returns the current session token, empty when signed out.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken replaces the session token.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ListAssets returns one page of assets matching q.
func (c *Client) ListAssets(ctx context.Context, q asset.Query) (*asset.ListResult, error) {
	var out asset.ListResult
	if err := c.do(ctx, http.MethodGet, "/api/assets/", q.Values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAsset returns a single asset. Compliance fields are set when signed in.
func (c *Client) GetAsset(ctx context.Context, address string) (*asset.Detail, error) {
	var out asset.Detail
	if err := c.do(ctx, http.MethodGet, "/api/assets/"+url.PathEscape(address), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetHistory returns the price history of a token. Empty period or interval
// use the server defaults.
func (c *Client) GetHistory(ctx context.Context, address, period, interval string) (*asset.History, error) {
	q := url.Values{}
	if period != "" {
		q.Set("period", period)
	}
	if interval != "" {
		q.Set("interval", interval)
	}
	var out asset.History
	if err := c.do(ctx, http.MethodGet, "/api/assets/"+url.PathEscape(address)+"/history", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetFeatured returns the featured assets.
func (c *Client) GetFeatured(ctx context.Context) ([]asset.Asset, error) {
	var out []asset.Asset
	if err := c.do(ctx, http.MethodGet, "/api/assets/featured", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAsset submits a token creation request. Requires a session.
func (c *Client) CreateAsset(ctx context.Context, req *asset.CreateRequest) (*asset.CreateResponse, error) {
	var out asset.CreateResponse
	if err := c.do(ctx, http.MethodPost, "/api/assets/create", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RequestNonce asks for a login nonce and the message to sign.
func (c *Client) RequestNonce(ctx context.Context, address string) (*session.NonceResponse, error) {
	var out session.NonceResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/nonce/"+url.PathEscape(address), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Connect exchanges a signed nonce message for a session token and keeps
// the token for later calls.
func (c *Client) Connect(ctx context.Context, req session.ConnectRequest) (*session.ConnectResponse, error) {
	var out session.ConnectResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/connect", nil, req, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

// Login runs the nonce, sign and connect steps for the wallet of key.
func (c *Client) Login(ctx context.Context, key *ecdsa.PrivateKey) (*session.ConnectResponse, error) {
	if key == nil {
		return nil, errors.New("login: nil private key")
	}
	address := crypto.PubkeyToAddress(key.PublicKey).Hex()

	nonce, err := c.RequestNonce(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("request nonce: %w", err)
	}
	sig, err := auth.SignEIP191(nonce.Message, key)
	if err != nil {
		return nil, fmt.Errorf("sign login message: %w", err)
	}
	res, err := c.Connect(ctx, session.ConnectRequest{
		Address:   address,
		Signature: sig,
		Message:   nonce.Message,
	})
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return res, nil
}

// Verify checks the current session token.
func (c *Client) Verify(ctx context.Context) (*session.VerifyResponse, error) {
	var out session.VerifyResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/verify", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Disconnect revokes the current session and forgets the token.
func (c *Client) Disconnect(ctx context.Context) error {
	var out session.DisconnectResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/disconnect", nil, nil, &out); err != nil {
		return err
	}
	c.SetToken("")
	return nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		return readHTTPError(resp)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if !env.Success || resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
			apiErr.Details = env.Error.Details
		}
		return apiErr
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

func readHTTPError(resp *http.Response) error {
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrBodyBytes))
	if err != nil {
		return fmt.Errorf("server returned %d and body read failed: %w", resp.StatusCode, err)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(b))}
}
