package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/rwadex/rwa-dex-api/pkg/app/errors"
	"github.com/rwadex/rwa-dex-api/pkg/asset"
	"github.com/rwadex/rwa-dex-api/pkg/auth"
)

const serviceName = "AssetService"

// logService wraps Service with logging of every call
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the asset Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) done(method string, start time.Time, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
	)
	switch {
	case err == nil:
	case apperrors.IsInternalError(err):
		ls.logger.Error(method+" failed", append(fields, zap.Error(err))...)
		return
	default:
		ls.logger.Info(method+" rejected", append(fields, zap.Error(err))...)
		return
	}
	ls.logger.Debug(method+" completed", fields...)
}

// ListAssets wraps the service method with logging
func (ls *logService) ListAssets(ctx context.Context, q asset.Query) (res *asset.ListResult, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{zap.String("query", q.CacheKey())}
		if res != nil {
			fields = append(fields, zap.Int("total_items", res.Pagination.TotalItems), zap.Int("returned", len(res.Assets)))
		}
		ls.done("ListAssets", start, err, fields...)
	}()
	return ls.svc.ListAssets(ctx, q)
}

// GetAsset wraps the service method with logging
func (ls *logService) GetAsset(ctx context.Context, address string, viewer *auth.Session) (res *asset.Detail, err error) {
	start := time.Now()
	defer func() {
		ls.done("GetAsset", start, err,
			zap.String("token_address", address),
			zap.Bool("authenticated", viewer != nil),
		)
	}()
	return ls.svc.GetAsset(ctx, address, viewer)
}

// GetHistory wraps the service method with logging
func (ls *logService) GetHistory(ctx context.Context, address, period, interval string) (res *asset.History, err error) {
	start := time.Now()
	defer func() {
		ls.done("GetHistory", start, err,
			zap.String("token_address", address),
			zap.String("period", period),
			zap.String("interval", interval),
		)
	}()
	return ls.svc.GetHistory(ctx, address, period, interval)
}

// GetFeatured wraps the service method with logging
func (ls *logService) GetFeatured(ctx context.Context) (res []asset.Asset, err error) {
	start := time.Now()
	defer func() {
		ls.done("GetFeatured", start, err, zap.Int("returned", len(res)))
	}()
	return ls.svc.GetFeatured(ctx)
}

// CreateAsset wraps the service method with logging
func (ls *logService) CreateAsset(
	ctx context.Context,
	issuer string,
	req *asset.CreateRequest,
) (resp *asset.CreateResponse, err error) {
	start := time.Now()
	ls.logger.Info("CreateAsset started",
		zap.String("service", serviceName),
		zap.String("method", "CreateAsset"),
		zap.String("issuer", issuer),
	)
	defer func() {
		if err != nil {
			ls.done("CreateAsset", start, err, zap.String("issuer", issuer))
			return
		}
		ls.logger.Info("CreateAsset completed",
			zap.String("service", serviceName),
			zap.String("method", "CreateAsset"),
			zap.String("issuer", issuer),
			zap.String("request_id", resp.RequestID),
			zap.String("symbol", resp.Symbol),
			zap.Duration("duration", time.Since(start)),
		)
	}()
	return ls.svc.CreateAsset(ctx, issuer, req)
}
