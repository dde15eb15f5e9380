package asset

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Listing defaults and bounds.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100

	SortAsc  = "asc"
	SortDesc = "desc"
)

// ErrInvalidQuery is returned for malformed listing parameters.
var ErrInvalidQuery = errors.New("invalid query")

// sortFields maps accepted sortBy values to a comparable projection of an Asset.
var sortFields = map[string]sortKey{
	"name":            {text: func(a *Asset) string { return a.Name }},
	"symbol":          {text: func(a *Asset) string { return a.Symbol }},
	"jurisdiction":    {text: func(a *Asset) string { return a.Jurisdiction }},
	"address":         {text: func(a *Asset) string { return a.Address }},
	"assetType":       {number: func(a *Asset) decimal.Decimal { return decimal.NewFromInt(int64(a.AssetType)) }},
	"apy":             {number: func(a *Asset) decimal.Decimal { return a.apyDecimal() }},
	"yieldRate":       {number: func(a *Asset) decimal.Decimal { return toDecimal(a.YieldRate) }},
	"tvl":             {number: func(a *Asset) decimal.Decimal { return toDecimal(a.TVL) }},
	"currentPrice":    {number: func(a *Asset) decimal.Decimal { return toDecimal(a.CurrentPrice) }},
	"totalSupply":     {number: func(a *Asset) decimal.Decimal { return toDecimal(a.TotalSupply) }},
	"totalAssetValue": {number: func(a *Asset) decimal.Decimal { return toDecimal(a.TotalAssetValue) }},
	"maturityDate":    {number: func(a *Asset) decimal.Decimal { return toDecimal(a.MaturityDate) }},
	"decimals":        {number: func(a *Asset) decimal.Decimal { return decimal.NewFromInt(int64(a.Decimals)) }},
}

// Query holds the listing filters, ordering and page selection.
type Query struct {
	Type         *Type
	MinAPY       *decimal.Decimal
	MaxAPY       *decimal.Decimal
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	Jurisdiction string
	Page         int
	Limit        int
	SortBy       string
	SortOrder    string
}

// DefaultQuery returns the unfiltered first page sorted by name.
func DefaultQuery() Query {
	return Query{Page: DefaultPage, Limit: DefaultLimit, SortBy: "name", SortOrder: SortAsc}
}

// InvalidParamError names the offending query parameter.
type InvalidParamError struct {
	Param  string
	Value  string
	Reason string
}

func (e *InvalidParamError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Param, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidQuery) true.
func (e *InvalidParamError) Is(target error) bool { return target == ErrInvalidQuery }

// ParseQuery reads listing parameters from a URL query. Empty values are
// treated as absent.
func ParseQuery(values url.Values) (Query, error) {
	q := DefaultQuery()

	if v := values.Get("type"); v != "" {
		t, err := ParseType(v)
		if err != nil {
			return q, &InvalidParamError{Param: "type", Value: v, Reason: "unknown asset type"}
		}
		q.Type = &t
	}

	for _, p := range []struct {
		name string
		dst  **decimal.Decimal
	}{
		{"minAPY", &q.MinAPY},
		{"maxAPY", &q.MaxAPY},
		{"minPrice", &q.MinPrice},
		{"maxPrice", &q.MaxPrice},
	} {
		v := values.Get(p.name)
		if v == "" {
			continue
		}
		d, err := decimal.NewFromString(v)
		if err != nil {
			return q, &InvalidParamError{Param: p.name, Value: v, Reason: "not a number"}
		}
		*p.dst = &d
	}

	q.Jurisdiction = strings.TrimSpace(values.Get("jurisdiction"))

	if v := values.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return q, &InvalidParamError{Param: "page", Value: v, Reason: "must be an integer >= 1"}
		}
		q.Page = n
	}
	if v := values.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > MaxLimit {
			return q, &InvalidParamError{Param: "limit", Value: v, Reason: fmt.Sprintf("must be an integer between 1 and %d", MaxLimit)}
		}
		q.Limit = n
	}
	if v := values.Get("sortBy"); v != "" {
		if _, ok := sortFields[v]; !ok {
			return q, &InvalidParamError{Param: "sortBy", Value: v, Reason: "unsupported sort field"}
		}
		q.SortBy = v
	}
	if v := values.Get("sortOrder"); v != "" {
		switch strings.ToLower(v) {
		case SortAsc, SortDesc:
			q.SortOrder = strings.ToLower(v)
		default:
			return q, &InvalidParamError{Param: "sortOrder", Value: v, Reason: "must be asc or desc"}
		}
	}
	return q, nil
}

// CacheKey is a canonical encoding of the query: defaults applied,
// case-insensitive fields lowercased and keys sorted.
func (q Query) CacheKey() string {
	v := url.Values{}
	if q.Type != nil {
		v.Set("type", strings.ToLower(q.Type.String()))
	}
	setDecimal(v, "minapy", q.MinAPY)
	setDecimal(v, "maxapy", q.MaxAPY)
	setDecimal(v, "minprice", q.MinPrice)
	setDecimal(v, "maxprice", q.MaxPrice)
	if q.Jurisdiction != "" {
		v.Set("jurisdiction", strings.ToLower(q.Jurisdiction))
	}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.Limit))
	v.Set("sortby", q.SortBy)
	v.Set("sortorder", q.SortOrder)
	// Encode sorts by key.
	return v.Encode()
}

// Values encodes the query in the form ParseQuery reads. Zero paging and
// sort fields are left out so the server applies its defaults.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.Type != nil {
		v.Set("type", q.Type.String())
	}
	setDecimal(v, "minAPY", q.MinAPY)
	setDecimal(v, "maxAPY", q.MaxAPY)
	setDecimal(v, "minPrice", q.MinPrice)
	setDecimal(v, "maxPrice", q.MaxPrice)
	if q.Jurisdiction != "" {
		v.Set("jurisdiction", q.Jurisdiction)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.SortBy != "" {
		v.Set("sortBy", q.SortBy)
	}
	if q.SortOrder != "" {
		v.Set("sortOrder", q.SortOrder)
	}
	return v
}

func setDecimal(v url.Values, key string, d *decimal.Decimal) {
	if d != nil {
		v.Set(key, d.String())
	}
}

// SortFields lists the accepted sortBy values.
func SortFields() []string {
	out := make([]string, 0, len(sortFields))
	for k := range sortFields {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
