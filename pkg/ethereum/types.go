package ethereum

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ErrBlockchain matches every failed contract read.
var ErrBlockchain = errors.New("blockchain call failed")

// MaxAssetType is the highest asset type code a token may report.
const MaxAssetType = 4

// CallError wraps a failed contract read.
type CallError struct {
	Method  string
	Address common.Address
	Err     error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s on %s: %v", e.Method, e.Address.Hex(), e.Err)
}

func (e *CallError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrBlockchain) true.
func (e *CallError) Is(target error) bool { return target == ErrBlockchain }

// AssetInfo is the static description of an RWA token.
type AssetInfo struct {
	Address         common.Address
	Name            string
	Symbol          string
	Decimals        uint8
	TotalSupply     *big.Int
	AssetType       uint8
	TotalAssetValue *big.Int
	YieldRate       *big.Int // basis points
	MaturityDate    *big.Int // unix seconds
	Jurisdiction    string
	AssetURI        string
}

// PoolInfo is the DEX pool state of a token.
type PoolInfo struct {
	Reserve0       *big.Int
	Reserve1       *big.Int
	TotalLiquidity *big.Int
	LastPrice      *big.Int
	LastUpdateTime *big.Int
}

// PriceInfo is the oracle price of a token.
type PriceInfo struct {
	Price     *big.Int
	Timestamp *big.Int
}

// Network describes the chain the gateway is bound to.
type Network struct {
	Name      string            `json:"name"`
	ChainID   int64             `json:"chainId"`
	Contracts map[string]string `json:"contracts"`
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
