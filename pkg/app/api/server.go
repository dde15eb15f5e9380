// Package api implements app.Runner for the API server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rwadex/rwa-dex-api/internal/metrics"
	apphttp "github.com/rwadex/rwa-dex-api/pkg/app/http"
	"github.com/rwadex/rwa-dex-api/pkg/cache"
	"github.com/rwadex/rwa-dex-api/pkg/config"
	"github.com/rwadex/rwa-dex-api/pkg/ethereum"
	"github.com/rwadex/rwa-dex-api/pkg/pgutil"
)

const startupTimeout = 30 * time.Second

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.Config
}

// NewServer initializes new api server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting RWA DEX API server",
		zap.String("environment", cfg.Environment),
		zap.String("network", cfg.Ethereum.Network),
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	startCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	store, purge, err := s.openCache(startCtx, logger)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	chain, err := ethereum.NewClient(startCtx, &cfg.Ethereum, logger)
	if err != nil {
		return fmt.Errorf("connect blockchain: %w", err)
	}
	defer chain.Close()

	router := NewRouter(Deps{
		Config:  cfg,
		Store:   store,
		Chain:   chain,
		Network: chain.Network(),
		Logger:  logger,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return apphttp.ServeAndWait(gctx, router, logger, &cfg.Server)
	})
	if cfg.Monitoring.Enabled {
		g.Go(func() error {
			return s.serveMetrics(gctx, logger)
		})
	}
	if purge != nil {
		g.Go(func() error {
			s.runPurge(gctx, purge, logger)
			return nil
		})
	}
	return g.Wait()
}

// openCache connects the configured backend. For postgres it also returns
// the expired-row purger.
func (s *Server) openCache(ctx context.Context, logger *zap.Logger) (cache.Store, *cache.PGStore, error) {
	cfg := s.cfg.Cache
	switch cfg.Driver {
	case config.CacheDriverRedis:
		store, err := cache.NewRedisStore(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		logger.Info("Connected to Redis cache")
		return store, nil, nil
	case config.CacheDriverPostgres:
		db, err := pgutil.ConnectDB(ctx, &cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connect cache database: %w", err)
		}
		logger.Info("Connected to Postgres cache",
			zap.String("host", cfg.Database.Host),
			zap.String("database", cfg.Database.Database),
		)
		store := cache.NewPGStore(db)
		return store, store, nil
	case config.CacheDriverMemory:
		logger.Warn("Using in-process memory cache; counters and nonces are not shared between replicas")
		return cache.NewMemoryStore(), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache driver %q", cfg.Driver)
	}
}

func (s *Server) runPurge(ctx context.Context, store *cache.PGStore, logger *zap.Logger) {
	interval := s.cfg.Cache.PurgeInterval
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("Starting cache purge loop", zap.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := store.PurgeExpired(ctx)
			if err != nil {
				logger.Warn("Cache purge failed", zap.Error(err))
				continue
			}
			if n > 0 {
				metrics.CacheEntriesPurged.Add(float64(n))
				logger.Debug("Purged expired cache entries", zap.Int64("count", n))
			}
		}
	}
}

func (s *Server) serveMetrics(ctx context.Context, logger *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.cfg.Monitoring.MetricsHost, s.cfg.Monitoring.MetricsPort),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return apphttp.Serve(ctx, logger.Named("metrics"), srv, s.cfg.Server.ShutdownTimeout)
}
