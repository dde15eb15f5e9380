package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts API requests by route pattern, method and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rwadex_http_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"route", "method", "status"},
	)

	// HTTPRequestDuration tracks request handling time
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rwadex_http_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	// ChainCallsTotal counts contract reads by method and outcome
	ChainCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rwadex_chain_calls_total",
			Help: "Total number of contract read calls",
		},
		[]string{"method", "status"},
	)

	// ChainCallDuration tracks contract read latency
	ChainCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rwadex_chain_call_duration_seconds",
			Help:    "Contract read call duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method"},
	)

	// CacheRequestsTotal counts cache lookups by key class and result (hit, miss, error)
	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rwadex_cache_requests_total",
			Help: "Total number of cache lookups",
		},
		[]string{"class", "result"},
	)

	// AssetFetchFailures counts tokens excluded from a listing because a read failed
	AssetFetchFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rwadex_asset_fetch_failures_total",
			Help: "Total number of tokens excluded from listings due to read failures",
		},
	)

	// AssetsListed tracks how many assets the last full fan-out returned
	AssetsListed = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rwadex_assets_listed",
			Help: "Number of assets returned by the last full chain fan-out",
		},
	)

	// AuthAttemptsTotal counts wallet auth operations by step and outcome
	AuthAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rwadex_auth_attempts_total",
			Help: "Total number of wallet authentication attempts",
		},
		[]string{"step", "status"},
	)

	// RateLimitedTotal counts requests rejected by the rate limiter
	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rwadex_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	// CacheEntriesPurged counts expired rows removed from the database cache backend
	CacheEntriesPurged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rwadex_cache_entries_purged_total",
			Help: "Total number of expired cache rows purged",
		},
	)
)
