package client_test

import (
	"context"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rwadex/rwa-dex-api/pkg/app/api"
	"github.com/rwadex/rwa-dex-api/pkg/asset"
	"github.com/rwadex/rwa-dex-api/pkg/auth"
	"github.com/rwadex/rwa-dex-api/pkg/cache"
	"github.com/rwadex/rwa-dex-api/pkg/client"
	"github.com/rwadex/rwa-dex-api/pkg/config"
	"github.com/rwadex/rwa-dex-api/pkg/ethereum"
	"github.com/rwadex/rwa-dex-api/pkg/session"
)

var (
	tokenA = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	tokenB = common.HexToAddress("0x00000000000000000000000000000000000000b2")
)

// fakeChain serves a fixed token registry.
type fakeChain struct {
	mu        sync.Mutex
	tokens    []common.Address
	infos     map[common.Address]*ethereum.AssetInfo
	reserves  map[common.Address]int64
	compliant map[common.Address]bool
	issuers   map[common.Address]bool
}

func newFakeChain() *fakeChain {
	fc := &fakeChain{
		tokens:    []common.Address{tokenA, tokenB},
		infos:     map[common.Address]*ethereum.AssetInfo{},
		reserves:  map[common.Address]int64{tokenA: 5_000, tokenB: 9_000},
		compliant: map[common.Address]bool{},
		issuers:   map[common.Address]bool{},
	}
	fc.infos[tokenA] = &ethereum.AssetInfo{
		Address: tokenA, Name: "Harbor Office", Symbol: "HBO", Decimals: 18,
		TotalSupply: big.NewInt(1_000_000), AssetType: uint8(asset.RealEstate),
		TotalAssetValue: big.NewInt(2_000_000), YieldRate: big.NewInt(650),
		MaturityDate: big.NewInt(0), Jurisdiction: "US",
	}
	fc.infos[tokenB] = &ethereum.AssetInfo{
		Address: tokenB, Name: "Treasury Note", Symbol: "TN", Decimals: 18,
		TotalSupply: big.NewInt(500_000), AssetType: uint8(asset.Bond),
		TotalAssetValue: big.NewInt(500_000), YieldRate: big.NewInt(420),
		MaturityDate: big.NewInt(1_900_000_000), Jurisdiction: "SG",
	}
	return fc
}

func (f *fakeChain) TotalTokens(context.Context) (uint64, error) {
	return uint64(len(f.tokens)), nil
}

func (f *fakeChain) TokenAt(_ context.Context, i uint64) (common.Address, error) {
	if i >= uint64(len(f.tokens)) {
		return common.Address{}, errors.New("index out of range")
	}
	return f.tokens[i], nil
}

func (f *fakeChain) GetAssetInfo(_ context.Context, token common.Address) (*ethereum.AssetInfo, error) {
	info, ok := f.infos[token]
	if !ok {
		return nil, errors.New("execution reverted")
	}
	return info, nil
}

func (f *fakeChain) GetPoolInfo(_ context.Context, token common.Address) (*ethereum.PoolInfo, error) {
	r := big.NewInt(f.reserves[token])
	return &ethereum.PoolInfo{
		Reserve0: r, Reserve1: r, TotalLiquidity: r,
		LastPrice: big.NewInt(100), LastUpdateTime: big.NewInt(1_700_000_000),
	}, nil
}

func (f *fakeChain) GetPrice(context.Context, common.Address) (*ethereum.PriceInfo, error) {
	return &ethereum.PriceInfo{Price: big.NewInt(100), Timestamp: big.NewInt(1_700_000_000)}, nil
}

func (f *fakeChain) CheckCompliance(_ context.Context, user, _ common.Address) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.compliant[user]
}

func (f *fakeChain) IsAuthorizedIssuer(_ context.Context, issuer common.Address) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.issuers[issuer], nil
}

func newTestClient(t *testing.T, chain *fakeChain) *client.Client {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.Auth.JWTSecret = "client-test-secret-0123456789"
	cfg.RateLimit.Enabled = false

	srv := httptest.NewServer(api.NewRouter(api.Deps{
		Config:  cfg,
		Store:   cache.NewMemoryStore(),
		Chain:   chain,
		Network: ethereum.Network{Name: "testnet", ChainID: 5003},
		Logger:  zap.NewNop(),
	}))
	t.Cleanup(srv.Close)

	c, err := client.New(srv.URL, client.WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	return c
}

func TestNew_RejectsBadURL(t *testing.T) {
	_, err := client.New("ftp://example.com")
	assert.Error(t, err)
	_, err = client.New("http://local host")
	assert.Error(t, err)
}

func TestClient_ListAssets(t *testing.T) {
	c := newTestClient(t, newFakeChain())
	ctx := context.Background()

	res, err := c.ListAssets(ctx, asset.Query{SortBy: "tvl", SortOrder: asset.SortDesc})
	require.NoError(t, err)
	require.Len(t, res.Assets, 2)
	assert.Equal(t, "Treasury Note", res.Assets[0].Name)
	assert.Equal(t, asset.Bond, res.Assets[0].AssetType)
	assert.Equal(t, 2, res.Pagination.TotalItems)

	bond := asset.Bond
	minAPY := decimal.NewFromInt(5)
	res, err = c.ListAssets(ctx, asset.Query{Type: &bond, MinAPY: &minAPY})
	require.NoError(t, err)
	assert.Empty(t, res.Assets)
	assert.NotNil(t, res.Assets)
}

func TestClient_ListAssetsInvalidQuery(t *testing.T) {
	c := newTestClient(t, newFakeChain())

	_, err := c.ListAssets(context.Background(), asset.Query{SortBy: "color"})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "BAD_REQUEST", apiErr.Code)
	assert.Contains(t, apiErr.Details, "sortBy")
}

func TestClient_FeaturedAndHistory(t *testing.T) {
	c := newTestClient(t, newFakeChain())
	ctx := context.Background()

	featured, err := c.GetFeatured(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, featured)
	assert.Equal(t, "TN", featured[0].Symbol)

	h, err := c.GetHistory(ctx, tokenA.Hex(), "7d", "1d")
	require.NoError(t, err)
	assert.True(t, h.Synthetic)
	assert.Len(t, h.History, 7)

	_, err = c.GetHistory(ctx, tokenA.Hex(), "24h", "1d")
	assert.Equal(t, "BAD_REQUEST", client.ErrorCode(err))
}

func TestClient_GetAssetInvalidAddress(t *testing.T) {
	c := newTestClient(t, newFakeChain())

	_, err := c.GetAsset(context.Background(), "0x1234")
	assert.Equal(t, "BAD_REQUEST", client.ErrorCode(err))
}

func TestClient_LoginFlow(t *testing.T) {
	chain := newFakeChain()
	c := newTestClient(t, chain)
	ctx := context.Background()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	wallet := crypto.PubkeyToAddress(key.PublicKey)
	chain.compliant[wallet] = true
	chain.issuers[wallet] = true

	anon, err := c.GetAsset(ctx, tokenA.Hex())
	require.NoError(t, err)
	assert.Nil(t, anon.UserCanTrade)
	assert.Nil(t, anon.Compliance)

	conn, err := c.Login(ctx, key)
	require.NoError(t, err)
	assert.NotEmpty(t, conn.Token)
	assert.Equal(t, conn.Token, c.Token())
	assert.True(t, strings.EqualFold(wallet.Hex(), conn.Address))

	v, err := c.Verify(ctx)
	require.NoError(t, err)
	assert.True(t, v.Valid)

	detail, err := c.GetAsset(ctx, tokenA.Hex())
	require.NoError(t, err)
	require.NotNil(t, detail.UserCanTrade)
	assert.True(t, *detail.UserCanTrade)
	assert.True(t, detail.Compliance.UserVerified)

	assetType := asset.Commodity
	created, err := c.CreateAsset(ctx, &asset.CreateRequest{
		Name:            "Gold Vault",
		Symbol:          "GLDV",
		TotalSupply:     "1000",
		AssetType:       &assetType,
		TotalAssetValue: "250000",
		YieldRate:       "300",
		Jurisdiction:    "CH",
	})
	require.NoError(t, err)
	assert.Equal(t, asset.CreateStatusPending, created.Status)
	assert.Equal(t, strings.ToLower(wallet.Hex()), created.Issuer)
	assert.NotEmpty(t, created.RequestID)

	token := c.Token()
	require.NoError(t, c.Disconnect(ctx))
	assert.Empty(t, c.Token())

	c.SetToken(token)
	_, err = c.Verify(ctx)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestClient_ConnectReplayRejected(t *testing.T) {
	c := newTestClient(t, newFakeChain())
	ctx := context.Background()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	address := crypto.PubkeyToAddress(key.PublicKey).Hex()

	nonce, err := c.RequestNonce(ctx, address)
	require.NoError(t, err)
	sig, err := auth.SignEIP191(nonce.Message, key)
	require.NoError(t, err)
	req := session.ConnectRequest{Address: address, Signature: sig, Message: nonce.Message}

	_, err = c.Connect(ctx, req)
	require.NoError(t, err)

	_, err = c.Connect(ctx, req)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestClient_CreateAssetRequiresSession(t *testing.T) {
	c := newTestClient(t, newFakeChain())

	_, err := c.CreateAsset(context.Background(), &asset.CreateRequest{Name: "x"})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestClient_CreateAssetUnauthorizedIssuer(t *testing.T) {
	c := newTestClient(t, newFakeChain())
	ctx := context.Background()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	_, err = c.Login(ctx, key)
	require.NoError(t, err)

	assetType := asset.Invoice
	_, err = c.CreateAsset(ctx, &asset.CreateRequest{
		Name: "Receivables", Symbol: "RCV", TotalSupply: "10", AssetType: &assetType,
		TotalAssetValue: "10", YieldRate: "100", Jurisdiction: "UK",
	})
	assert.Equal(t, "FORBIDDEN", client.ErrorCode(err))
}
