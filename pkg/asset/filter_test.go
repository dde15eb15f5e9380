package asset_test

import (
	"math"
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rwadex/rwa-dex-api/pkg/asset"
)

func sample() []asset.Asset {
	return []asset.Asset{
		{Address: "0x01", Name: "bravo", AssetType: asset.Bond, YieldRate: "500", CurrentPrice: "1000", Jurisdiction: "US", TVL: "30"},
		{Address: "0x02", Name: "Alpha", AssetType: asset.RealEstate, YieldRate: "850", CurrentPrice: "250000", Jurisdiction: "UK", TVL: "900"},
		{Address: "0x03", Name: "charlie", AssetType: asset.Bond, YieldRate: "1200", CurrentPrice: "999", Jurisdiction: "us", TVL: "100"},
		{Address: "0x04", Name: "Delta", AssetType: asset.Commodity, YieldRate: "0", CurrentPrice: "5", Jurisdiction: "SG", TVL: "100"},
	}
}

func names(assets []asset.Asset) []string {
	out := make([]string, len(assets))
	for i, a := range assets {
		out[i] = a.Name
	}
	return out
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestFilter(t *testing.T) {
	bond := asset.Bond
	cases := []struct {
		name  string
		query asset.Query
		want  []string
	}{
		{"none", asset.DefaultQuery(), []string{"bravo", "Alpha", "charlie", "Delta"}},
		{"type", asset.Query{Type: &bond}, []string{"bravo", "charlie"}},
		{"minAPY inclusive", asset.Query{MinAPY: dec("8.5")}, []string{"Alpha", "charlie"}},
		{"maxAPY inclusive", asset.Query{MaxAPY: dec("5")}, []string{"bravo", "Delta"}},
		{"price range", asset.Query{MinPrice: dec("999"), MaxPrice: dec("1000")}, []string{"bravo", "charlie"}},
		{"jurisdiction case-insensitive", asset.Query{Jurisdiction: "Us"}, []string{"bravo", "charlie"}},
		{"combined", asset.Query{Type: &bond, MinAPY: dec("6"), Jurisdiction: "US"}, []string{"charlie"}},
		{"no match", asset.Query{MinPrice: dec("1000000")}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, names(asset.Filter(sample(), tc.query)))
		})
	}
}

func TestSort(t *testing.T) {
	assets := sample()
	asset.Sort(assets, "name", asset.SortAsc)
	assert.Equal(t, []string{"Alpha", "bravo", "charlie", "Delta"}, names(assets))

	asset.Sort(assets, "name", asset.SortDesc)
	assert.Equal(t, []string{"Delta", "charlie", "bravo", "Alpha"}, names(assets))

	// Numeric strings compare as numbers, not lexically.
	assets = sample()
	asset.Sort(assets, "currentPrice", asset.SortAsc)
	assert.Equal(t, []string{"Delta", "charlie", "bravo", "Alpha"}, names(assets))

	// Ties keep input order.
	assets = sample()
	asset.Sort(assets, "tvl", asset.SortAsc)
	assert.Equal(t, []string{"bravo", "charlie", "Delta", "Alpha"}, names(assets))
}

func TestPaginate(t *testing.T) {
	assets := make([]asset.Asset, 45)

	res := asset.Paginate(assets, 1, 20)
	assert.Len(t, res.Assets, 20)
	assert.Equal(t, asset.Pagination{CurrentPage: 1, TotalPages: 3, TotalItems: 45, ItemsPerPage: 20}, res.Pagination)

	res = asset.Paginate(assets, 3, 20)
	assert.Len(t, res.Assets, 5)

	res = asset.Paginate(assets, 4, 20)
	require.NotNil(t, res.Assets)
	assert.Empty(t, res.Assets)
	assert.Equal(t, 3, res.Pagination.TotalPages)

	res = asset.Paginate(nil, 1, 20)
	require.NotNil(t, res.Assets)
	assert.Equal(t, 0, res.Pagination.TotalPages)
	assert.Equal(t, 0, res.Pagination.TotalItems)
}

func TestApply_HugePageIsEmpty(t *testing.T) {
	q, err := asset.ParseQuery(url.Values{"page": {"100000000000000000"}, "limit": {"100"}})
	require.NoError(t, err)

	var res asset.ListResult
	require.NotPanics(t, func() { res = asset.Apply([]asset.Asset{{Name: "a"}}, q) })
	require.NotNil(t, res.Assets)
	assert.Empty(t, res.Assets)
	assert.Equal(t, 1, res.Pagination.TotalPages)
	assert.Equal(t, 100000000000000000, res.Pagination.CurrentPage)

	res = asset.Paginate(make([]asset.Asset, 3), math.MaxInt, asset.MaxLimit)
	assert.Empty(t, res.Assets)
}

func TestApply(t *testing.T) {
	bond := asset.Bond
	q := asset.Query{Type: &bond, Page: 1, Limit: 1, SortBy: "apy", SortOrder: asset.SortDesc}
	res := asset.Apply(sample(), q)
	assert.Equal(t, []string{"charlie"}, names(res.Assets))
	assert.Equal(t, 2, res.Pagination.TotalItems)
	assert.Equal(t, 2, res.Pagination.TotalPages)
}

func TestTopByTVL(t *testing.T) {
	in := sample()
	top := asset.TopByTVL(in, 2)
	assert.Equal(t, []string{"Alpha", "charlie"}, names(top))
	// input untouched
	assert.Equal(t, "bravo", in[0].Name)

	assert.Len(t, asset.TopByTVL(in, 10), 4)
	assert.NotNil(t, asset.TopByTVL(nil, 5))
}

func TestSyntheticHistory(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 34, 0, 0, time.UTC)
	h1, err := asset.SyntheticHistory("0xABC", "", "", now)
	require.NoError(t, err)
	h2, err := asset.SyntheticHistory("0xabc", "24h", "1h", now.Add(10*time.Minute))
	require.NoError(t, err)

	assert.True(t, h1.Synthetic)
	assert.Equal(t, "24h", h1.Period)
	assert.Len(t, h1.History, 24)
	assert.Equal(t, h1.History, h2.History)
	assert.Equal(t, "2025-03-01T12:00:00Z", h1.History[23].Timestamp)
	assert.Equal(t, "2025-02-28T13:00:00Z", h1.History[0].Timestamp)

	h3, err := asset.SyntheticHistory("0xabc", "30d", "1d", now)
	require.NoError(t, err)
	assert.Len(t, h3.History, 30)

	h4, err := asset.SyntheticHistory("0xabc", "7d", "4h", now)
	require.NoError(t, err)
	assert.Len(t, h4.History, 42)

	for _, p := range [][2]string{{"1y", "1h"}, {"24h", "5m"}, {"24h", "1d2"}} {
		_, err := asset.SyntheticHistory("0xabc", p[0], p[1], now)
		assert.ErrorIs(t, err, asset.ErrInvalidQuery)
	}
}
