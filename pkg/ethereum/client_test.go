package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"testing"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rwadex/rwa-dex-api/pkg/config"
	"github.com/rwadex/rwa-dex-api/pkg/ethereum/contracts"
)

var (
	factoryAddr    = common.HexToAddress("0x1000000000000000000000000000000000000001")
	dexAddr        = common.HexToAddress("0x1000000000000000000000000000000000000002")
	oracleAddr     = common.HexToAddress("0x1000000000000000000000000000000000000003")
	complianceAddr = common.HexToAddress("0x1000000000000000000000000000000000000004")
	tokenAddr      = common.HexToAddress("0x2000000000000000000000000000000000000001")
	userAddr       = common.HexToAddress("0x3000000000000000000000000000000000000001")
)

type handler func(args []any) ([]any, error)

// fakeBackend answers eth_call by decoding the selector against the ABI
// registered for the target address.
type fakeBackend struct {
	mu       sync.Mutex
	abis     map[common.Address]*abi.ABI
	handlers map[common.Address]map[string]handler
	// stalled addresses never answer; calls return when ctx is done.
	stalled map[common.Address]bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		abis:     make(map[common.Address]*abi.ABI),
		handlers: make(map[common.Address]map[string]handler),
		stalled:  make(map[common.Address]bool),
	}
}

func (f *fakeBackend) stall(addr common.Address) {
	f.mu.Lock()
	f.stalled[addr] = true
	f.mu.Unlock()
}

func (f *fakeBackend) on(t *testing.T, addr common.Address, meta *bind.MetaData, method string, h handler) {
	t.Helper()
	parsed, err := meta.GetAbi()
	require.NoError(t, err)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.abis[addr] = parsed
	if f.handlers[addr] == nil {
		f.handlers[addr] = make(map[string]handler)
	}
	f.handlers[addr][method] = h
}

func (f *fakeBackend) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	return []byte{0x60}, nil
}

func (f *fakeBackend) CallContract(ctx context.Context, msg geth.CallMsg, _ *big.Int) ([]byte, error) {
	f.mu.Lock()
	parsed := f.abis[*msg.To]
	handlers := f.handlers[*msg.To]
	stalled := f.stalled[*msg.To]
	f.mu.Unlock()

	if stalled {
		<-ctx.Done()
		return nil, ctx.Err()
	}

	if parsed == nil {
		return nil, fmt.Errorf("no contract at %s", msg.To.Hex())
	}
	method, err := parsed.MethodById(msg.Data[:4])
	if err != nil {
		return nil, err
	}
	h, ok := handlers[method.Name]
	if !ok {
		return nil, fmt.Errorf("unexpected call %s", method.Name)
	}
	args, err := method.Inputs.Unpack(msg.Data[4:])
	if err != nil {
		return nil, err
	}
	out, err := h(args)
	if err != nil {
		return nil, err
	}
	return method.Outputs.Pack(out...)
}

func returns(values ...any) handler {
	return func([]any) ([]any, error) { return values, nil }
}

func fails(msg string) handler {
	return func([]any) ([]any, error) { return nil, errors.New(msg) }
}

func testConfig() *config.EthereumConfig {
	return &config.EthereumConfig{
		Network:     config.NetworkTestnet,
		ChainID:     5003,
		CallTimeout: 5 * time.Second,
		Contracts: config.ContractsConfig{
			RWAFactory:         factoryAddr.Hex(),
			DEXCore:            dexAddr.Hex(),
			PriceOracle:        oracleAddr.Hex(),
			ComplianceRegistry: complianceAddr.Hex(),
		},
	}
}

func newTestClient(t *testing.T, backend *fakeBackend, logger *zap.Logger) *Client {
	t.Helper()
	if logger == nil {
		logger = zap.NewNop()
	}
	c, err := NewClientWithBackend(testConfig(), backend, logger)
	require.NoError(t, err)
	return c
}

func stubToken(t *testing.T, b *fakeBackend, addr common.Address, assetType uint8, jurisdiction string) {
	b.on(t, addr, contracts.RWATokenMetaData, "name", returns("Manhattan Tower"))
	b.on(t, addr, contracts.RWATokenMetaData, "symbol", returns("MHT"))
	b.on(t, addr, contracts.RWATokenMetaData, "decimals", returns(uint8(18)))
	b.on(t, addr, contracts.RWATokenMetaData, "totalSupply", returns(big.NewInt(1_000_000)))
	b.on(t, addr, contracts.RWATokenMetaData, "getAssetInfo", returns(
		assetType,
		big.NewInt(5_000_000),
		big.NewInt(850),
		big.NewInt(1_900_000_000),
		jurisdiction,
		"ipfs://asset",
	))
}

func TestClient_GetAssetInfo(t *testing.T) {
	b := newFakeBackend()
	stubToken(t, b, tokenAddr, 1, "US")
	c := newTestClient(t, b, nil)

	info, err := c.GetAssetInfo(context.Background(), tokenAddr)
	require.NoError(t, err)

	assert.Equal(t, tokenAddr, info.Address)
	assert.Equal(t, "Manhattan Tower", info.Name)
	assert.Equal(t, "MHT", info.Symbol)
	assert.Equal(t, uint8(18), info.Decimals)
	assert.Equal(t, "1000000", info.TotalSupply.String())
	assert.Equal(t, uint8(1), info.AssetType)
	assert.Equal(t, "5000000", info.TotalAssetValue.String())
	assert.Equal(t, "850", info.YieldRate.String())
	assert.Equal(t, "1900000000", info.MaturityDate.String())
	assert.Equal(t, "US", info.Jurisdiction)
	assert.Equal(t, "ipfs://asset", info.AssetURI)
}

func TestClient_GetAssetInfo_RejectsUnknownAssetType(t *testing.T) {
	b := newFakeBackend()
	stubToken(t, b, tokenAddr, 9, "US")
	c := newTestClient(t, b, nil)

	_, err := c.GetAssetInfo(context.Background(), tokenAddr)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBlockchain)
	assert.Contains(t, err.Error(), "unknown asset type 9")
}

func TestClient_GetAssetInfo_ReadFailure(t *testing.T) {
	b := newFakeBackend()
	stubToken(t, b, tokenAddr, 0, "US")
	b.on(t, tokenAddr, contracts.RWATokenMetaData, "symbol", fails("execution reverted"))
	c := newTestClient(t, b, nil)

	_, err := c.GetAssetInfo(context.Background(), tokenAddr)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBlockchain)

	var callErr *CallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, "symbol", callErr.Method)
}

func TestClient_PoolAndPrice(t *testing.T) {
	b := newFakeBackend()
	b.on(t, dexAddr, contracts.DEXCoreMetaData, "getPoolInfo", func(args []any) ([]any, error) {
		require.Equal(t, tokenAddr, args[0].(common.Address))
		return []any{contracts.PoolInfo{
			Reserve0:       big.NewInt(100),
			Reserve1:       big.NewInt(200),
			TotalLiquidity: big.NewInt(300),
			LastPrice:      big.NewInt(400),
			LastUpdateTime: big.NewInt(500),
		}}, nil
	})
	b.on(t, oracleAddr, contracts.PriceOracleMetaData, "getPrice", returns(big.NewInt(1_050_000), big.NewInt(1_700_000_000)))
	c := newTestClient(t, b, nil)

	pool, err := c.GetPoolInfo(context.Background(), tokenAddr)
	require.NoError(t, err)
	assert.Equal(t, "100", pool.Reserve0.String())
	assert.Equal(t, "200", pool.Reserve1.String())
	assert.Equal(t, "300", pool.TotalLiquidity.String())
	assert.Equal(t, "400", pool.LastPrice.String())
	assert.Equal(t, "500", pool.LastUpdateTime.String())

	price, err := c.GetPrice(context.Background(), tokenAddr)
	require.NoError(t, err)
	assert.Equal(t, "1050000", price.Price.String())
	assert.Equal(t, "1700000000", price.Timestamp.String())
}

func TestClient_FactoryEnumeration(t *testing.T) {
	b := newFakeBackend()
	tokens := []common.Address{tokenAddr, common.HexToAddress("0x2000000000000000000000000000000000000002")}
	b.on(t, factoryAddr, contracts.RWAFactoryMetaData, "totalTokens", returns(big.NewInt(int64(len(tokens)))))
	b.on(t, factoryAddr, contracts.RWAFactoryMetaData, "allTokens", func(args []any) ([]any, error) {
		idx := args[0].(*big.Int).Int64()
		return []any{tokens[idx]}, nil
	})
	b.on(t, factoryAddr, contracts.RWAFactoryMetaData, "authorizedIssuers", func(args []any) ([]any, error) {
		return []any{args[0].(common.Address) == userAddr}, nil
	})
	c := newTestClient(t, b, nil)
	ctx := context.Background()

	total, err := c.TotalTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), total)

	for i, want := range tokens {
		got, err := c.TokenAt(ctx, uint64(i))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	ok, err := c.IsAuthorizedIssuer(ctx, userAddr)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = c.IsAuthorizedIssuer(ctx, tokenAddr)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClient_CheckCompliance(t *testing.T) {
	t.Run("eligible user", func(t *testing.T) {
		b := newFakeBackend()
		stubToken(t, b, tokenAddr, 0, "SG")
		b.on(t, complianceAddr, contracts.ComplianceRegistryMetaData, "checkCompliance", func(args []any) ([]any, error) {
			assert.Equal(t, userAddr, args[0].(common.Address))
			assert.Equal(t, "SG", args[1].(string))
			assert.False(t, args[2].(bool), "accreditation is not required to trade")
			return []any{true}, nil
		})
		c := newTestClient(t, b, nil)
		assert.True(t, c.CheckCompliance(context.Background(), userAddr, tokenAddr))
	})

	t.Run("registry failure denies", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		b := newFakeBackend()
		stubToken(t, b, tokenAddr, 0, "SG")
		b.on(t, complianceAddr, contracts.ComplianceRegistryMetaData, "checkCompliance", fails("node timeout"))
		c := newTestClient(t, b, zap.New(core))

		assert.False(t, c.CheckCompliance(context.Background(), userAddr, tokenAddr))
		assert.Equal(t, 1, logs.FilterMessage("Compliance check denied: registry read failed").Len())
	})

	t.Run("asset failure denies", func(t *testing.T) {
		b := newFakeBackend()
		stubToken(t, b, tokenAddr, 0, "SG")
		b.on(t, tokenAddr, contracts.RWATokenMetaData, "getAssetInfo", fails("reverted"))
		c := newTestClient(t, b, nil)

		assert.False(t, c.CheckCompliance(context.Background(), userAddr, tokenAddr))
	})
}

func TestClient_Network(t *testing.T) {
	cfg := testConfig()
	cfg.Contracts.YieldDistributor = "0x5000000000000000000000000000000000000005"
	c, err := NewClientWithBackend(cfg, newFakeBackend(), zap.NewNop())
	require.NoError(t, err)

	n := c.Network()
	assert.Equal(t, int64(5003), n.ChainID)
	assert.Equal(t, "testnet", n.Name)
	assert.Len(t, n.Contracts, 5)
	assert.Equal(t, factoryAddr.Hex(), n.Contracts["rwaFactory"])
	assert.NotContains(t, n.Contracts, "lendingProtocol")
}

func TestClient_CallTimeout(t *testing.T) {
	b := newFakeBackend()
	b.on(t, oracleAddr, contracts.PriceOracleMetaData, "getPrice", returns(big.NewInt(1), big.NewInt(1)))
	b.stall(oracleAddr)

	cfg := testConfig()
	cfg.CallTimeout = 50 * time.Millisecond
	c, err := NewClientWithBackend(cfg, b, zap.NewNop())
	require.NoError(t, err)

	start := time.Now()
	_, err = c.GetPrice(context.Background(), tokenAddr)
	elapsed := time.Since(start)

	var callErr *CallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, "getPrice", callErr.Method)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.ErrorIs(t, err, ErrBlockchain)
	assert.Less(t, elapsed, 2*time.Second)
}
