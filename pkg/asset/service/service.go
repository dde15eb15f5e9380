package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rwadex/rwa-dex-api/internal/metrics"
	apperrors "github.com/rwadex/rwa-dex-api/pkg/app/errors"
	"github.com/rwadex/rwa-dex-api/pkg/asset"
	"github.com/rwadex/rwa-dex-api/pkg/auth"
	"github.com/rwadex/rwa-dex-api/pkg/cache"
	"github.com/rwadex/rwa-dex-api/pkg/ethereum"
)

// Chain is the subset of the blockchain gateway used by the asset service.
//
//go:generate mockery --name Chain --output mocks --outpkg mocks --filename mock_chain.go --with-expecter
type Chain interface {
	TotalTokens(ctx context.Context) (uint64, error)
	TokenAt(ctx context.Context, index uint64) (common.Address, error)
	GetAssetInfo(ctx context.Context, token common.Address) (*ethereum.AssetInfo, error)
	GetPoolInfo(ctx context.Context, token common.Address) (*ethereum.PoolInfo, error)
	GetPrice(ctx context.Context, token common.Address) (*ethereum.PriceInfo, error)
	CheckCompliance(ctx context.Context, user, token common.Address) bool
	IsAuthorizedIssuer(ctx context.Context, issuer common.Address) (bool, error)
}

// Service defines the asset read and issuance operations
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	ListAssets(ctx context.Context, q asset.Query) (*asset.ListResult, error)
	GetAsset(ctx context.Context, address string, viewer *auth.Session) (*asset.Detail, error)
	GetHistory(ctx context.Context, address, period, interval string) (*asset.History, error)
	GetFeatured(ctx context.Context) ([]asset.Asset, error)
	CreateAsset(ctx context.Context, issuer string, req *asset.CreateRequest) (*asset.CreateResponse, error)
}

// Config tunes caching and the listing fan-out.
type Config struct {
	ListingTTL     time.Duration
	AssetTTL       time.Duration
	FeaturedTTL    time.Duration
	AllAssetsTTL   time.Duration
	FeaturedCount  int
	MaxTokens      uint64
	MaxConcurrency int
}

type assetService struct {
	chain    Chain
	store    cache.Store
	cfg      Config
	validate *validator.Validate
	now      func() time.Time
	logger   *zap.Logger
}

// NewService creates the asset service.
func NewService(chain Chain, store cache.Store, cfg Config, logger *zap.Logger) Service {
	if cfg.MaxConcurrency < 1 {
		cfg.MaxConcurrency = 1
	}
	if cfg.FeaturedCount < 1 {
		cfg.FeaturedCount = 5
	}
	return &assetService{
		chain:    chain,
		store:    store,
		cfg:      cfg,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
		logger:   logger,
	}
}

// ListAssets returns one filtered, sorted page of every factory token.
func (s *assetService) ListAssets(ctx context.Context, q asset.Query) (*asset.ListResult, error) {
	key := cache.FilteredAssetsKey(q.CacheKey())

	var cached asset.ListResult
	hit, err := cache.GetJSON(ctx, s.store, key, &cached)
	if err != nil {
		return nil, cache.ServiceError(err)
	}
	if hit {
		return &cached, nil
	}

	all, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	res := asset.Apply(all, q)
	if err := cache.SetJSON(ctx, s.store, key, res, s.cfg.ListingTTL); err != nil {
		return nil, cache.ServiceError(err)
	}
	return &res, nil
}

// loadAll reads every factory token and refreshes the all-assets snapshot.
func (s *assetService) loadAll(ctx context.Context) ([]asset.Asset, error) {
	all, err := s.fetchAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := cache.SetJSON(ctx, s.store, cache.AllAssetsKey, all, s.cfg.AllAssetsTTL); err != nil {
		return nil, cache.ServiceError(err)
	}
	return all, nil
}

// fetchAll fans out over the factory registry. A token whose reads fail is
// left out of the result; the result keeps factory index order.
func (s *assetService) fetchAll(ctx context.Context) ([]asset.Asset, error) {
	total, err := s.chain.TotalTokens(ctx)
	if err != nil {
		return nil, apperrors.BlockchainError(err, "Failed to read token registry")
	}
	if s.cfg.MaxTokens > 0 && total > s.cfg.MaxTokens {
		s.logger.Warn("Token registry larger than read cap, truncating",
			zap.Uint64("total", total),
			zap.Uint64("max_tokens", s.cfg.MaxTokens),
		)
		total = s.cfg.MaxTokens
	}

	n := int(total)
	results := make([]*asset.Asset, n)
	errs := make([]error, n)

	semaphore := make(chan struct{}, s.cfg.MaxConcurrency)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := range n {
		semaphore <- struct{}{}
		go func(index int) {
			defer func() {
				<-semaphore
				wg.Done()
			}()
			if err := ctx.Err(); err != nil {
				errs[index] = err
				return
			}
			token, err := s.chain.TokenAt(ctx, uint64(index))
			if err != nil {
				errs[index] = fmt.Errorf("token %d: %w", index, err)
				return
			}
			a, err := s.fetchAsset(ctx, token)
			if err != nil {
				errs[index] = fmt.Errorf("token %d (%s): %w", index, token.Hex(), err)
				return
			}
			results[index] = a
		}(i)
	}
	wg.Wait()

	var failures *multierror.Error
	assets := make([]asset.Asset, 0, n)
	for i := range n {
		if errs[i] != nil {
			metrics.AssetFetchFailures.Inc()
			s.logger.Warn("Excluding asset from listing", zap.Int("index", i), zap.Error(errs[i]))
			failures = multierror.Append(failures, errs[i])
			continue
		}
		assets = append(assets, *results[i])
	}
	if failures.ErrorOrNil() != nil {
		s.logger.Info("Asset fan-out completed with failures",
			zap.Int("total", n),
			zap.Int("listed", len(assets)),
			zap.Int("failed", failures.Len()),
			zap.String("summary", failures.Error()),
		)
	}
	metrics.AssetsListed.Set(float64(len(assets)))
	return assets, nil
}

// fetchAsset runs the three reads of one token concurrently.
func (s *assetService) fetchAsset(ctx context.Context, token common.Address) (*asset.Asset, error) {
	var (
		info  *ethereum.AssetInfo
		pool  *ethereum.PoolInfo
		price *ethereum.PriceInfo
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		info, err = s.chain.GetAssetInfo(gctx, token)
		return err
	})
	g.Go(func() (err error) {
		pool, err = s.chain.GetPoolInfo(gctx, token)
		return err
	})
	g.Go(func() (err error) {
		price, err = s.chain.GetPrice(gctx, token)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	a := asset.New(info, pool, price)
	return &a, nil
}

// GetAsset returns one token. Viewer specific compliance fields are added
// after the cache lookup and never stored.
func (s *assetService) GetAsset(ctx context.Context, address string, viewer *auth.Session) (*asset.Detail, error) {
	if !auth.ValidateEVMAddress(address) {
		return nil, apperrors.BadRequestError(nil, "Invalid token address")
	}
	token := common.HexToAddress(address)
	key := cache.AssetKey(address)

	var a asset.Asset
	hit, err := cache.GetJSON(ctx, s.store, key, &a)
	if err != nil {
		return nil, cache.ServiceError(err)
	}
	if !hit {
		fetched, err := s.fetchAsset(ctx, token)
		if err != nil {
			return nil, apperrors.BlockchainError(err, "Failed to fetch asset data")
		}
		a = *fetched
		if err := cache.SetJSON(ctx, s.store, key, a, s.cfg.AssetTTL); err != nil {
			return nil, cache.ServiceError(err)
		}
	}

	detail := &asset.Detail{Asset: a}
	if viewer != nil {
		canTrade := s.chain.CheckCompliance(ctx, common.HexToAddress(viewer.Address), token)
		detail.UserCanTrade = &canTrade
		detail.Compliance = &asset.Compliance{Required: true, UserVerified: canTrade}
	}
	return detail, nil
}

// GetHistory returns the price series of a token.
func (s *assetService) GetHistory(_ context.Context, address, period, interval string) (*asset.History, error) {
	if !auth.ValidateEVMAddress(address) {
		return nil, apperrors.BadRequestError(nil, "Invalid token address")
	}
	h, err := asset.SyntheticHistory(address, period, interval, s.now())
	if err != nil {
		return nil, apperrors.BadRequestError(err, err.Error())
	}
	return h, nil
}

// GetFeatured returns the assets with the largest TVL.
func (s *assetService) GetFeatured(ctx context.Context) ([]asset.Asset, error) {
	var featured []asset.Asset
	hit, err := cache.GetJSON(ctx, s.store, cache.FeaturedAssetsKey, &featured)
	if err != nil {
		return nil, cache.ServiceError(err)
	}
	if hit && featured != nil {
		return featured, nil
	}

	var all []asset.Asset
	hit, err = cache.GetJSON(ctx, s.store, cache.AllAssetsKey, &all)
	if err != nil {
		return nil, cache.ServiceError(err)
	}
	if !hit {
		if all, err = s.loadAll(ctx); err != nil {
			return nil, err
		}
	}

	featured = asset.TopByTVL(all, s.cfg.FeaturedCount)
	if err := cache.SetJSON(ctx, s.store, cache.FeaturedAssetsKey, featured, s.cfg.FeaturedTTL); err != nil {
		return nil, cache.ServiceError(err)
	}
	return featured, nil
}

// CreateAsset validates an issuance request from an authorized issuer and
// records it as pending. Nothing is submitted on chain.
func (s *assetService) CreateAsset(ctx context.Context, issuer string, req *asset.CreateRequest) (*asset.CreateResponse, error) {
	if req == nil {
		return nil, apperrors.BadRequestError(nil, "Request body required")
	}
	if err := s.validateCreate(req); err != nil {
		return nil, err
	}
	if !auth.ValidateEVMAddress(issuer) {
		return nil, apperrors.UnAuthorizedError(nil, "Authentication required")
	}

	ok, err := s.chain.IsAuthorizedIssuer(ctx, common.HexToAddress(issuer))
	if err != nil {
		return nil, apperrors.BlockchainError(err, "Failed to check issuer authorization")
	}
	if !ok {
		return nil, apperrors.ForbiddenError(nil, "Not authorized to create tokens")
	}

	complianceRequired := true
	if req.ComplianceRequired != nil {
		complianceRequired = *req.ComplianceRequired
	}
	return &asset.CreateResponse{
		RequestID:                 uuid.NewString(),
		Status:                    asset.CreateStatusPending,
		Issuer:                    strings.ToLower(issuer),
		Name:                      req.Name,
		Symbol:                    req.Symbol,
		AssetType:                 *req.AssetType,
		ComplianceRequired:        complianceRequired,
		Message:                   "Token creation request accepted. Transaction pending submission.",
		EstimatedConfirmationTime: asset.EstimatedConfirmationTime,
		CreatedAt:                 s.now().UTC(),
	}, nil
}

func (s *assetService) validateCreate(req *asset.CreateRequest) error {
	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return apperrors.BadRequestError(err, "Invalid request")
		}
		details := make(map[string]any, len(verrs))
		missing := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			field := jsonFieldName(fe.Field())
			details[field] = fe.Tag()
			missing = append(missing, field)
		}
		return apperrors.ValidationError(err, "Missing or invalid fields: "+strings.Join(missing, ", "), details)
	}

	amounts := map[string]string{
		"totalSupply":     req.TotalSupply.String(),
		"totalAssetValue": req.TotalAssetValue.String(),
		"yieldRate":       req.YieldRate.String(),
	}
	if req.MaturityDate != "" {
		amounts["maturityDate"] = req.MaturityDate.String()
	}
	details := map[string]any{}
	for field, raw := range amounts {
		d, err := decimal.NewFromString(raw)
		if err != nil || d.IsNegative() || !d.IsInteger() {
			details[field] = "must be a non-negative integer"
		}
	}
	if len(details) > 0 {
		return apperrors.ValidationError(nil, "Invalid numeric fields", details)
	}
	return nil
}

// jsonFieldName lowers the first letter of a struct field name.
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
