// Package asset defines the aggregated view of an RWA token and the
// in-memory listing operations over it.
package asset

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rwadex/rwa-dex-api/pkg/ethereum"
)

// Type is the asset class of a token.
type Type uint8

// Asset classes in on-chain enum order.
const (
	RealEstate Type = iota
	Bond
	Invoice
	Commodity
	Equipment
)

var typeNames = [...]string{"RealEstate", "Bond", "Invoice", "Commodity", "Equipment"}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Unknown(" + strconv.Itoa(int(t)) + ")"
}

// ParseType accepts a case-insensitive class name or its numeric code.
func ParseType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	for i, name := range typeNames {
		if strings.EqualFold(s, name) {
			return Type(i), nil
		}
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err == nil && int(n) < len(typeNames) {
		return Type(n), nil
	}
	return 0, fmt.Errorf("unknown asset type %q", s)
}

// MarshalJSON encodes the class name.
func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts the class name or the numeric code.
func (t *Type) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var (
		parsed Type
		err    error
	)
	switch v := raw.(type) {
	case string:
		parsed, err = ParseType(v)
	case float64:
		parsed, err = ParseType(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		err = fmt.Errorf("invalid asset type %s", data)
	}
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Liquidity is the DEX pool state of an asset.
type Liquidity struct {
	Reserve0       string `json:"reserve0"`
	Reserve1       string `json:"reserve1"`
	TotalLiquidity string `json:"totalLiquidity"`
	LastPrice      string `json:"lastPrice"`
	LastUpdateTime string `json:"lastUpdateTime"`
}

// Asset joins token metadata, pool state and oracle price. Integer amounts
// are decimal strings of the raw on-chain values.
type Asset struct {
	Address         string    `json:"address"`
	Name            string    `json:"name"`
	Symbol          string    `json:"symbol"`
	Decimals        uint8     `json:"decimals"`
	TotalSupply     string    `json:"totalSupply"`
	AssetType       Type      `json:"assetType"`
	TotalAssetValue string    `json:"totalAssetValue"`
	YieldRate       string    `json:"yieldRate"`
	MaturityDate    string    `json:"maturityDate"`
	Jurisdiction    string    `json:"jurisdiction"`
	AssetURI        string    `json:"assetURI"`
	CurrentPrice    string    `json:"currentPrice"`
	PriceTimestamp  string    `json:"priceTimestamp"`
	Liquidity       Liquidity `json:"liquidity"`
	TVL             string    `json:"tvl"`
	APY             float64   `json:"apy"`
}

// Compliance tells a signed-in viewer whether they may trade the asset.
type Compliance struct {
	Required     bool `json:"required"`
	UserVerified bool `json:"userVerified"`
}

// Detail is the single-asset response. Viewer fields are never cached.
type Detail struct {
	Asset
	UserCanTrade *bool       `json:"userCanTrade,omitempty"`
	Compliance   *Compliance `json:"compliance,omitempty"`
}

// Pagination describes one page of a listing.
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// ListResult is one page of assets.
type ListResult struct {
	Assets     []Asset    `json:"assets"`
	Pagination Pagination `json:"pagination"`
}

// New assembles an Asset from the three chain reads.
func New(info *ethereum.AssetInfo, pool *ethereum.PoolInfo, price *ethereum.PriceInfo) Asset {
	return Asset{
		Address:         strings.ToLower(info.Address.Hex()),
		Name:            info.Name,
		Symbol:          info.Symbol,
		Decimals:        info.Decimals,
		TotalSupply:     str(info.TotalSupply),
		AssetType:       Type(info.AssetType),
		TotalAssetValue: str(info.TotalAssetValue),
		YieldRate:       str(info.YieldRate),
		MaturityDate:    str(info.MaturityDate),
		Jurisdiction:    info.Jurisdiction,
		AssetURI:        info.AssetURI,
		CurrentPrice:    str(price.Price),
		PriceTimestamp:  str(price.Timestamp),
		Liquidity: Liquidity{
			Reserve0:       str(pool.Reserve0),
			Reserve1:       str(pool.Reserve1),
			TotalLiquidity: str(pool.TotalLiquidity),
			LastPrice:      str(pool.LastPrice),
			LastUpdateTime: str(pool.LastUpdateTime),
		},
		// TVL is the quote-asset side of the pool.
		TVL: str(pool.Reserve1),
		APY: APYFromYieldRate(info.YieldRate).InexactFloat64(),
	}
}

// APYFromYieldRate converts basis points into a percentage.
func APYFromYieldRate(yieldRate *big.Int) decimal.Decimal {
	if yieldRate == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(yieldRate, 0).Div(decimal.NewFromInt(100))
}

// apyDecimal recomputes the exact APY from the stored yield rate.
func (a *Asset) apyDecimal() decimal.Decimal {
	return toDecimal(a.YieldRate).Div(decimal.NewFromInt(100))
}

func str(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

func toDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
