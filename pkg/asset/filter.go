package asset

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

type sortKey struct {
	text   func(*Asset) string
	number func(*Asset) decimal.Decimal
}

func (k sortKey) compare(a, b *Asset) int {
	if k.text != nil {
		return strings.Compare(strings.ToLower(k.text(a)), strings.ToLower(k.text(b)))
	}
	return k.number(a).Cmp(k.number(b))
}

// Matches reports whether a passes every filter set on q.
func (q Query) Matches(a *Asset) bool {
	if q.Type != nil && a.AssetType != *q.Type {
		return false
	}
	if q.MinAPY != nil || q.MaxAPY != nil {
		apy := a.apyDecimal()
		if q.MinAPY != nil && apy.LessThan(*q.MinAPY) {
			return false
		}
		if q.MaxAPY != nil && apy.GreaterThan(*q.MaxAPY) {
			return false
		}
	}
	if q.MinPrice != nil || q.MaxPrice != nil {
		price := toDecimal(a.CurrentPrice)
		if q.MinPrice != nil && price.LessThan(*q.MinPrice) {
			return false
		}
		if q.MaxPrice != nil && price.GreaterThan(*q.MaxPrice) {
			return false
		}
	}
	if q.Jurisdiction != "" && !strings.EqualFold(a.Jurisdiction, q.Jurisdiction) {
		return false
	}
	return true
}

// Filter returns the assets matching q, preserving order.
func Filter(assets []Asset, q Query) []Asset {
	out := make([]Asset, 0, len(assets))
	for i := range assets {
		if q.Matches(&assets[i]) {
			out = append(out, assets[i])
		}
	}
	return out
}

// Sort orders assets in place by sortBy and sortOrder. Equal elements keep
// their relative order.
func Sort(assets []Asset, sortBy, sortOrder string) {
	key, ok := sortFields[sortBy]
	if !ok {
		key = sortFields["name"]
	}
	desc := sortOrder == SortDesc
	slices.SortStableFunc(assets, func(a, b Asset) int {
		c := key.compare(&a, &b)
		if desc {
			return -c
		}
		return c
	})
}

// Paginate cuts one page out of assets. Pages past the end are empty.
func Paginate(assets []Asset, page, limit int) ListResult {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	total := len(assets)
	totalPages := (total + limit - 1) / limit
	res := ListResult{
		Assets: []Asset{},
		Pagination: Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalItems:   total,
			ItemsPerPage: limit,
		},
	}
	// Compare pages before multiplying; page is client supplied and unbounded.
	if page > totalPages {
		return res
	}
	start := (page - 1) * limit
	end := min(start+limit, total)
	res.Assets = append(res.Assets, assets[start:end]...)
	return res
}

// Apply filters, sorts and paginates a copy of assets.
func Apply(assets []Asset, q Query) ListResult {
	filtered := Filter(assets, q)
	Sort(filtered, q.SortBy, q.SortOrder)
	return Paginate(filtered, q.Page, q.Limit)
}

// TopByTVL returns up to n assets with the largest TVL.
func TopByTVL(assets []Asset, n int) []Asset {
	sorted := slices.Clone(assets)
	Sort(sorted, "tvl", SortDesc)
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	if sorted == nil {
		sorted = []Asset{}
	}
	return sorted
}
