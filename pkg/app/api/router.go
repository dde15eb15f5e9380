package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/rwadex/rwa-dex-api/pkg/app"
	apphttp "github.com/rwadex/rwa-dex-api/pkg/app/http"
	assetservice "github.com/rwadex/rwa-dex-api/pkg/asset/service"
	"github.com/rwadex/rwa-dex-api/pkg/auth"
	"github.com/rwadex/rwa-dex-api/pkg/cache"
	"github.com/rwadex/rwa-dex-api/pkg/config"
	"github.com/rwadex/rwa-dex-api/pkg/ethereum"
	"github.com/rwadex/rwa-dex-api/pkg/ratelimit"
	sessionservice "github.com/rwadex/rwa-dex-api/pkg/session/service"
)

const healthPingTimeout = 2 * time.Second

// Deps are the long-lived components the router is built from.
type Deps struct {
	Config  *config.Config
	Store   cache.Store
	Chain   assetservice.Chain
	Network ethereum.Network
	Logger  *zap.Logger
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status      string           `json:"status"`
	Version     string           `json:"version"`
	Environment string           `json:"environment"`
	Cache       string           `json:"cache"`
	Network     ethereum.Network `json:"network"`
	Timestamp   time.Time        `json:"timestamp"`
}

// NewRouter wires services, middleware and routes.
func NewRouter(d Deps) http.Handler {
	cfg, logger := d.Config, d.Logger

	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTExpiry)
	revocations := auth.NewRevocationList(d.Store)
	authn := auth.NewMiddleware(tokens, revocations, logger)

	assetSvc := assetservice.NewLog(assetservice.NewService(d.Chain, d.Store, assetservice.Config{
		ListingTTL:     cfg.Cache.TTL.Listing,
		AssetTTL:       cfg.Cache.TTL.Asset,
		FeaturedTTL:    cfg.Cache.TTL.Featured,
		AllAssetsTTL:   cfg.Cache.TTL.AllAssets,
		FeaturedCount:  cfg.Assets.FeaturedCount,
		MaxTokens:      cfg.Assets.MaxTokens,
		MaxConcurrency: cfg.Ethereum.MaxConcurrency,
	}, logger), logger)
	sessionSvc := sessionservice.NewLog(
		sessionservice.NewService(d.Store, tokens, authn, revocations, cfg.Cache.TTL.Nonce, logger),
		logger,
	)

	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	if cfg.Server.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(apphttp.AccessLog(logger))
	r.Use(apphttp.Recoverer(logger))
	r.Use(middleware.SetHeader("X-Content-Type-Options", "nosniff"))
	r.Use(middleware.SetHeader("X-Frame-Options", "DENY"))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{ratelimit.HeaderLimit, ratelimit.HeaderRemaining},
		AllowCredentials: true,
		MaxAge:           cfg.CORS.MaxAge,
	}))
	r.Use(middleware.Compress(5))
	r.Use(middleware.RequestSize(cfg.Server.MaxBodyBytes))
	r.Use(apphttp.Timeout(cfg.Server.RequestTimeout, logger))

	r.NotFound(apphttp.NotFound)
	r.MethodNotAllowed(apphttp.MethodNotAllowed)

	r.Get("/health", health(d))

	r.Group(func(r chi.Router) {
		if cfg.RateLimit.Enabled {
			r.Use(ratelimit.New(d.Store, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window, logger).Handler)
		}
		assetservice.RegisterRoutes(r, assetSvc, authn, logger)
		sessionservice.RegisterRoutes(r, sessionSvc, authn, logger)
	})

	return r
}

func health(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := HealthStatus{
			Status:      "healthy",
			Version:     app.Version,
			Environment: d.Config.Environment,
			Cache:       "ok",
			Network:     d.Network,
			Timestamp:   time.Now().UTC(),
		}
		code := http.StatusOK

		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()
		if err := d.Store.Ping(ctx); err != nil {
			d.Logger.Warn("Health check: cache unreachable", zap.Error(err))
			status.Status = "degraded"
			status.Cache = "unavailable"
			code = http.StatusServiceUnavailable
		}
		apphttp.WriteJSON(w, code, status)
	}
}
