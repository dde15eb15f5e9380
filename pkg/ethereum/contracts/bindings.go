package contracts

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

func bindCaller(meta *bind.MetaData, address common.Address, caller bind.ContractCaller) (*bind.BoundContract, error) {
	parsed, err := meta.GetAbi()
	if err != nil {
		return nil, err
	}
	if parsed == nil {
		return nil, errors.New("GetABI returned nil")
	}
	return bind.NewBoundContract(address, *parsed, caller, nil, nil), nil
}

// call invokes a single-output view method and converts the result to T.
func call[T any](c *bind.BoundContract, opts *bind.CallOpts, method string, params ...any) (T, error) {
	var out []any
	if err := c.Call(opts, &out, method, params...); err != nil {
		return *new(T), err
	}
	if len(out) == 0 {
		return *new(T), fmt.Errorf("%s: empty result", method)
	}
	return *abi.ConvertType(out[0], new(T)).(*T), nil
}

// RWAToken is a read-only binding to an RWA token contract.
type RWAToken struct {
	contract *bind.BoundContract
}

// NewRWAToken binds the token at address.
func NewRWAToken(address common.Address, caller bind.ContractCaller) (*RWAToken, error) {
	c, err := bindCaller(RWATokenMetaData, address, caller)
	if err != nil {
		return nil, err
	}
	return &RWAToken{contract: c}, nil
}

// Name is a free data retrieval call binding the contract method 0x06fdde03.
func (t *RWAToken) Name(opts *bind.CallOpts) (string, error) {
	return call[string](t.contract, opts, "name")
}

// Symbol is a free data retrieval call binding the contract method 0x95d89b41.
func (t *RWAToken) Symbol(opts *bind.CallOpts) (string, error) {
	return call[string](t.contract, opts, "symbol")
}

// Decimals is a free data retrieval call binding the contract method 0x313ce567.
func (t *RWAToken) Decimals(opts *bind.CallOpts) (uint8, error) {
	return call[uint8](t.contract, opts, "decimals")
}

// TotalSupply is a free data retrieval call binding the contract method 0x18160ddd.
func (t *RWAToken) TotalSupply(opts *bind.CallOpts) (*big.Int, error) {
	return call[*big.Int](t.contract, opts, "totalSupply")
}

// BalanceOf is a free data retrieval call binding the contract method 0x70a08231.
func (t *RWAToken) BalanceOf(opts *bind.CallOpts, account common.Address) (*big.Int, error) {
	return call[*big.Int](t.contract, opts, "balanceOf", account)
}

// AssetInfoOutput is the multi-value result of getAssetInfo.
type AssetInfoOutput struct {
	AssetType       uint8
	TotalAssetValue *big.Int
	YieldRate       *big.Int
	MaturityDate    *big.Int
	Jurisdiction    string
	AssetURI        string
}

// GetAssetInfo is a free data retrieval call binding the contract method getAssetInfo().
func (t *RWAToken) GetAssetInfo(opts *bind.CallOpts) (AssetInfoOutput, error) {
	var out []any
	if err := t.contract.Call(opts, &out, "getAssetInfo"); err != nil {
		return AssetInfoOutput{}, err
	}
	if len(out) != 6 {
		return AssetInfoOutput{}, fmt.Errorf("getAssetInfo: expected 6 values, got %d", len(out))
	}
	return AssetInfoOutput{
		AssetType:       *abi.ConvertType(out[0], new(uint8)).(*uint8),
		TotalAssetValue: *abi.ConvertType(out[1], new(*big.Int)).(**big.Int),
		YieldRate:       *abi.ConvertType(out[2], new(*big.Int)).(**big.Int),
		MaturityDate:    *abi.ConvertType(out[3], new(*big.Int)).(**big.Int),
		Jurisdiction:    *abi.ConvertType(out[4], new(string)).(*string),
		AssetURI:        *abi.ConvertType(out[5], new(string)).(*string),
	}, nil
}

// RWAFactory is a read-only binding to the token registry.
type RWAFactory struct {
	contract *bind.BoundContract
}

// NewRWAFactory binds the factory at address.
func NewRWAFactory(address common.Address, caller bind.ContractCaller) (*RWAFactory, error) {
	c, err := bindCaller(RWAFactoryMetaData, address, caller)
	if err != nil {
		return nil, err
	}
	return &RWAFactory{contract: c}, nil
}

// TotalTokens returns the number of registered tokens.
func (f *RWAFactory) TotalTokens(opts *bind.CallOpts) (*big.Int, error) {
	return call[*big.Int](f.contract, opts, "totalTokens")
}

// AllTokens returns the token registered at index.
func (f *RWAFactory) AllTokens(opts *bind.CallOpts, index *big.Int) (common.Address, error) {
	return call[common.Address](f.contract, opts, "allTokens", index)
}

// AuthorizedIssuers reports whether issuer may create tokens.
func (f *RWAFactory) AuthorizedIssuers(opts *bind.CallOpts, issuer common.Address) (bool, error) {
	return call[bool](f.contract, opts, "authorizedIssuers", issuer)
}

// PoolInfo mirrors the DEXCore pool tuple.
type PoolInfo struct {
	Reserve0       *big.Int
	Reserve1       *big.Int
	TotalLiquidity *big.Int
	LastPrice      *big.Int
	LastUpdateTime *big.Int
}

// DEXCore is a read-only binding to the exchange core.
type DEXCore struct {
	contract *bind.BoundContract
}

// NewDEXCore binds the exchange core at address.
func NewDEXCore(address common.Address, caller bind.ContractCaller) (*DEXCore, error) {
	c, err := bindCaller(DEXCoreMetaData, address, caller)
	if err != nil {
		return nil, err
	}
	return &DEXCore{contract: c}, nil
}

// GetPoolInfo returns the pool state for token.
func (d *DEXCore) GetPoolInfo(opts *bind.CallOpts, token common.Address) (PoolInfo, error) {
	return call[PoolInfo](d.contract, opts, "getPoolInfo", token)
}

// PriceOracle is a read-only binding to the price oracle.
type PriceOracle struct {
	contract *bind.BoundContract
}

// NewPriceOracle binds the oracle at address.
func NewPriceOracle(address common.Address, caller bind.ContractCaller) (*PriceOracle, error) {
	c, err := bindCaller(PriceOracleMetaData, address, caller)
	if err != nil {
		return nil, err
	}
	return &PriceOracle{contract: c}, nil
}

// GetPrice returns the latest price of token and the time it was reported.
func (o *PriceOracle) GetPrice(opts *bind.CallOpts, token common.Address) (price, timestamp *big.Int, err error) {
	var out []any
	if err := o.contract.Call(opts, &out, "getPrice", token); err != nil {
		return nil, nil, err
	}
	if len(out) != 2 {
		return nil, nil, fmt.Errorf("getPrice: expected 2 values, got %d", len(out))
	}
	price = *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
	timestamp = *abi.ConvertType(out[1], new(*big.Int)).(**big.Int)
	return price, timestamp, nil
}

// ComplianceRegistry is a read-only binding to the compliance registry.
type ComplianceRegistry struct {
	contract *bind.BoundContract
}

// NewComplianceRegistry binds the registry at address.
func NewComplianceRegistry(address common.Address, caller bind.ContractCaller) (*ComplianceRegistry, error) {
	c, err := bindCaller(ComplianceRegistryMetaData, address, caller)
	if err != nil {
		return nil, err
	}
	return &ComplianceRegistry{contract: c}, nil
}

// CheckCompliance reports whether user may trade an asset of the given jurisdiction.
func (r *ComplianceRegistry) CheckCompliance(opts *bind.CallOpts, user common.Address, jurisdiction string, requiresAccredited bool) (bool, error) {
	return call[bool](r.contract, opts, "checkCompliance", user, jurisdiction, requiresAccredited)
}
