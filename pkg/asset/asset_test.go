package asset_test

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rwadex/rwa-dex-api/pkg/asset"
	"github.com/rwadex/rwa-dex-api/pkg/ethereum"
)

func TestParseType(t *testing.T) {
	cases := map[string]asset.Type{
		"RealEstate": asset.RealEstate,
		"realestate": asset.RealEstate,
		"BOND":       asset.Bond,
		"2":          asset.Invoice,
		" Commodity": asset.Commodity,
		"4":          asset.Equipment,
	}
	for in, want := range cases {
		got, err := asset.ParseType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "5", "-1", "Stock"} {
		_, err := asset.ParseType(bad)
		assert.Error(t, err, bad)
	}
}

func TestType_JSON(t *testing.T) {
	b, err := json.Marshal(asset.Bond)
	require.NoError(t, err)
	assert.JSONEq(t, `"Bond"`, string(b))

	var got asset.Type
	require.NoError(t, json.Unmarshal([]byte(`3`), &got))
	assert.Equal(t, asset.Commodity, got)
	require.NoError(t, json.Unmarshal([]byte(`"invoice"`), &got))
	assert.Equal(t, asset.Invoice, got)
	assert.Error(t, json.Unmarshal([]byte(`9`), &got))
	assert.Error(t, json.Unmarshal([]byte(`true`), &got))
}

func TestNew(t *testing.T) {
	addr := common.HexToAddress("0xAbCdEf0123456789aBcDeF0123456789abCDef01")
	info := &ethereum.AssetInfo{
		Address:         addr,
		Name:            "Manhattan Tower",
		Symbol:          "MTWR",
		Decimals:        18,
		TotalSupply:     big.NewInt(1_000_000),
		AssetType:       0,
		TotalAssetValue: big.NewInt(50_000_000),
		YieldRate:       big.NewInt(850),
		MaturityDate:    big.NewInt(1893456000),
		Jurisdiction:    "US",
		AssetURI:        "ipfs://tower",
	}
	pool := &ethereum.PoolInfo{
		Reserve0:       big.NewInt(10),
		Reserve1:       big.NewInt(2500),
		TotalLiquidity: big.NewInt(158),
		LastPrice:      big.NewInt(250),
		LastUpdateTime: big.NewInt(1700000000),
	}
	price := &ethereum.PriceInfo{Price: big.NewInt(100_000), Timestamp: big.NewInt(1700000100)}

	a := asset.New(info, pool, price)
	assert.Equal(t, "0xabcdef0123456789abcdef0123456789abcdef01", a.Address)
	assert.Equal(t, asset.RealEstate, a.AssetType)
	assert.Equal(t, "2500", a.TVL)
	assert.Equal(t, "2500", a.Liquidity.Reserve1)
	assert.Equal(t, "100000", a.CurrentPrice)
	assert.Equal(t, "1700000100", a.PriceTimestamp)
	assert.InDelta(t, 8.5, a.APY, 1e-9)

	b, err := json.Marshal(a)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, "RealEstate", raw["assetType"])
	assert.Equal(t, "50000000", raw["totalAssetValue"])
}

func TestNew_NilAmountsRenderZero(t *testing.T) {
	a := asset.New(&ethereum.AssetInfo{}, &ethereum.PoolInfo{}, &ethereum.PriceInfo{})
	assert.Equal(t, "0", a.TVL)
	assert.Equal(t, "0", a.CurrentPrice)
	assert.Zero(t, a.APY)
}
