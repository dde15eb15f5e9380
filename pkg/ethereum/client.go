package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/rwadex/rwa-dex-api/internal/metrics"
	"github.com/rwadex/rwa-dex-api/pkg/config"
	"github.com/rwadex/rwa-dex-api/pkg/ethereum/contracts"
)

// Client is the read-only gateway to the RWA DEX contracts.
// All methods are safe for concurrent use.
type Client struct {
	config  *config.EthereumConfig
	rpc     *ethclient.Client
	backend bind.ContractCaller
	limiter *rate.Limiter
	logger  *zap.Logger

	factory    *contracts.RWAFactory
	dex        *contracts.DEXCore
	oracle     *contracts.PriceOracle
	compliance *contracts.ComplianceRegistry
}

// NewClient dials the configured RPC endpoint and checks it before binding
// the contracts.
func NewClient(ctx context.Context, cfg *config.EthereumConfig, logger *zap.Logger) (*Client, error) {
	dialCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()

	rpcURL := cfg.ActiveRPCURL()
	rpc, err := ethclient.DialContext(dialCtx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC %s: %w", rpcURL, err)
	}

	head, err := rpc.BlockNumber(dialCtx)
	if err != nil {
		rpc.Close()
		return nil, fmt.Errorf("failed to reach RPC %s: %w", rpcURL, err)
	}
	chainID, err := rpc.ChainID(dialCtx)
	if err != nil {
		rpc.Close()
		return nil, fmt.Errorf("failed to read chain id: %w", err)
	}
	if cfg.ChainID != 0 && chainID.Int64() != cfg.ChainID {
		rpc.Close()
		return nil, fmt.Errorf("chain id mismatch: configured %d, node reports %s", cfg.ChainID, chainID)
	}

	c, err := NewClientWithBackend(cfg, rpc, logger)
	if err != nil {
		rpc.Close()
		return nil, err
	}
	c.rpc = rpc
	if c.config.ChainID == 0 {
		c.config.ChainID = chainID.Int64()
	}

	logger.Info("Connected to chain",
		zap.String("network", cfg.Network),
		zap.String("rpc_url", rpcURL),
		zap.Int64("chain_id", chainID.Int64()),
		zap.Uint64("head_block", head),
		zap.String("rwa_factory", cfg.Contracts.RWAFactory),
		zap.String("dex_core", cfg.Contracts.DEXCore))

	return c, nil
}

// NewClientWithBackend binds the contracts against an existing caller.
func NewClientWithBackend(cfg *config.EthereumConfig, backend bind.ContractCaller, logger *zap.Logger) (*Client, error) {
	factory, err := contracts.NewRWAFactory(common.HexToAddress(cfg.Contracts.RWAFactory), backend)
	if err != nil {
		return nil, fmt.Errorf("failed to bind factory contract: %w", err)
	}
	dex, err := contracts.NewDEXCore(common.HexToAddress(cfg.Contracts.DEXCore), backend)
	if err != nil {
		return nil, fmt.Errorf("failed to bind dex core contract: %w", err)
	}
	oracle, err := contracts.NewPriceOracle(common.HexToAddress(cfg.Contracts.PriceOracle), backend)
	if err != nil {
		return nil, fmt.Errorf("failed to bind price oracle contract: %w", err)
	}
	compliance, err := contracts.NewComplianceRegistry(common.HexToAddress(cfg.Contracts.ComplianceRegistry), backend)
	if err != nil {
		return nil, fmt.Errorf("failed to bind compliance registry contract: %w", err)
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
	}

	return &Client{
		config:     cfg,
		backend:    backend,
		limiter:    limiter,
		logger:     logger,
		factory:    factory,
		dex:        dex,
		oracle:     oracle,
		compliance: compliance,
	}, nil
}

// Close releases the RPC connection.
func (c *Client) Close() {
	if c.rpc != nil {
		c.rpc.Close()
	}
}

// Network returns the chain and contract addresses the gateway reads from.
func (c *Client) Network() Network {
	addrs := map[string]string{
		"dexCore":            c.config.Contracts.DEXCore,
		"rwaFactory":         c.config.Contracts.RWAFactory,
		"complianceRegistry": c.config.Contracts.ComplianceRegistry,
		"priceOracle":        c.config.Contracts.PriceOracle,
	}
	if c.config.Contracts.LendingProtocol != "" {
		addrs["lendingProtocol"] = c.config.Contracts.LendingProtocol
	}
	if c.config.Contracts.YieldDistributor != "" {
		addrs["yieldDistributor"] = c.config.Contracts.YieldDistributor
	}
	return Network{Name: c.config.Network, ChainID: c.config.ChainID, Contracts: addrs}
}

// do runs one contract read under the throttle and the per-call timeout.
func (c *Client) do(ctx context.Context, method string, address common.Address, fn func(opts *bind.CallOpts) error) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &CallError{Method: method, Address: address, Err: err}
	}

	callCtx, cancel := context.WithTimeout(ctx, c.config.CallTimeout)
	defer cancel()

	start := time.Now()
	err := fn(&bind.CallOpts{Context: callCtx})
	metrics.ChainCallDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ChainCallsTotal.WithLabelValues(method, "error").Inc()
		return &CallError{Method: method, Address: address, Err: err}
	}
	metrics.ChainCallsTotal.WithLabelValues(method, "ok").Inc()
	return nil
}

// TotalTokens returns the number of tokens registered in the factory.
func (c *Client) TotalTokens(ctx context.Context) (uint64, error) {
	var total *big.Int
	err := c.do(ctx, "totalTokens", common.HexToAddress(c.config.Contracts.RWAFactory), func(opts *bind.CallOpts) (err error) {
		total, err = c.factory.TotalTokens(opts)
		return err
	})
	if err != nil {
		return 0, err
	}
	if total == nil || !total.IsUint64() {
		return 0, &CallError{Method: "totalTokens", Address: common.HexToAddress(c.config.Contracts.RWAFactory), Err: fmt.Errorf("count out of range: %v", total)}
	}
	return total.Uint64(), nil
}

// TokenAt returns the token registered at index.
func (c *Client) TokenAt(ctx context.Context, index uint64) (common.Address, error) {
	var token common.Address
	err := c.do(ctx, "allTokens", common.HexToAddress(c.config.Contracts.RWAFactory), func(opts *bind.CallOpts) (err error) {
		token, err = c.factory.AllTokens(opts, new(big.Int).SetUint64(index))
		return err
	})
	return token, err
}

// GetAssetInfo reads the ERC-20 metadata and the asset description of token.
func (c *Client) GetAssetInfo(ctx context.Context, token common.Address) (*AssetInfo, error) {
	binding, err := contracts.NewRWAToken(token, c.backend)
	if err != nil {
		return nil, &CallError{Method: "bind", Address: token, Err: err}
	}

	info := &AssetInfo{Address: token}
	var raw contracts.AssetInfoOutput

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.do(gctx, "name", token, func(opts *bind.CallOpts) (err error) {
			info.Name, err = binding.Name(opts)
			return err
		})
	})
	g.Go(func() error {
		return c.do(gctx, "symbol", token, func(opts *bind.CallOpts) (err error) {
			info.Symbol, err = binding.Symbol(opts)
			return err
		})
	})
	g.Go(func() error {
		return c.do(gctx, "decimals", token, func(opts *bind.CallOpts) (err error) {
			info.Decimals, err = binding.Decimals(opts)
			return err
		})
	})
	g.Go(func() error {
		return c.do(gctx, "totalSupply", token, func(opts *bind.CallOpts) (err error) {
			info.TotalSupply, err = binding.TotalSupply(opts)
			return err
		})
	})
	g.Go(func() error {
		return c.do(gctx, "getAssetInfo", token, func(opts *bind.CallOpts) (err error) {
			raw, err = binding.GetAssetInfo(opts)
			return err
		})
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if raw.AssetType > MaxAssetType {
		return nil, &CallError{Method: "getAssetInfo", Address: token, Err: fmt.Errorf("unknown asset type %d", raw.AssetType)}
	}

	info.TotalSupply = orZero(info.TotalSupply)
	info.AssetType = raw.AssetType
	info.TotalAssetValue = orZero(raw.TotalAssetValue)
	info.YieldRate = orZero(raw.YieldRate)
	info.MaturityDate = orZero(raw.MaturityDate)
	info.Jurisdiction = raw.Jurisdiction
	info.AssetURI = raw.AssetURI
	return info, nil
}

// GetPoolInfo reads the DEX pool of token.
func (c *Client) GetPoolInfo(ctx context.Context, token common.Address) (*PoolInfo, error) {
	var raw contracts.PoolInfo
	err := c.do(ctx, "getPoolInfo", token, func(opts *bind.CallOpts) (err error) {
		raw, err = c.dex.GetPoolInfo(opts, token)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &PoolInfo{
		Reserve0:       orZero(raw.Reserve0),
		Reserve1:       orZero(raw.Reserve1),
		TotalLiquidity: orZero(raw.TotalLiquidity),
		LastPrice:      orZero(raw.LastPrice),
		LastUpdateTime: orZero(raw.LastUpdateTime),
	}, nil
}

// GetPrice reads the oracle price of token.
func (c *Client) GetPrice(ctx context.Context, token common.Address) (*PriceInfo, error) {
	var price, ts *big.Int
	err := c.do(ctx, "getPrice", token, func(opts *bind.CallOpts) (err error) {
		price, ts, err = c.oracle.GetPrice(opts, token)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &PriceInfo{Price: orZero(price), Timestamp: orZero(ts)}, nil
}

// CheckCompliance reports whether user may trade token. It fails closed: any
// read error yields false and is only logged.
func (c *Client) CheckCompliance(ctx context.Context, user, token common.Address) bool {
	info, err := c.GetAssetInfo(ctx, token)
	if err != nil {
		c.logger.Warn("Compliance check denied: asset read failed",
			zap.String("user", user.Hex()),
			zap.String("token", token.Hex()),
			zap.Error(err))
		return false
	}

	var ok bool
	err = c.do(ctx, "checkCompliance", common.HexToAddress(c.config.Contracts.ComplianceRegistry), func(opts *bind.CallOpts) (err error) {
		ok, err = c.compliance.CheckCompliance(opts, user, info.Jurisdiction, false)
		return err
	})
	if err != nil {
		c.logger.Warn("Compliance check denied: registry read failed",
			zap.String("user", user.Hex()),
			zap.String("token", token.Hex()),
			zap.Error(err))
		return false
	}
	return ok
}

// IsAuthorizedIssuer reports whether issuer may create tokens through the factory.
func (c *Client) IsAuthorizedIssuer(ctx context.Context, issuer common.Address) (bool, error) {
	var ok bool
	err := c.do(ctx, "authorizedIssuers", common.HexToAddress(c.config.Contracts.RWAFactory), func(opts *bind.CallOpts) (err error) {
		ok, err = c.factory.AuthorizedIssuers(opts, issuer)
		return err
	})
	return ok, err
}
