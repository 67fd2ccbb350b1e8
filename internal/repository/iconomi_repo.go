package repository

import (
	"context"
	"fmt"
	"time"

	"iconomi-ranker/config"
	"iconomi-ranker/internal/dto"
	"iconomi-ranker/pkg/cache"
	"iconomi-ranker/pkg/common"
	"iconomi-ranker/pkg/httpclient"
	"iconomi-ranker/pkg/logger"

	"golang.org/x/time/rate"
)

type IconomiRepository interface {
	ListStrategies(ctx context.Context) ([]dto.StrategyTicker, error)
	GetStatistics(ctx context.Context, ticker string) (*dto.StrategyStats, error)
	GetPrice(ctx context.Context, ticker string) (*dto.StrategyPrice, error)
}

type iconomiRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     httpclient.HTTPClient
	cache          cache.Cache
	requestLimiter *rate.Limiter
}

func NewIconomiRepository(cfg *config.Config, log *logger.Logger, inmemoryCache cache.Cache) IconomiRepository {
	client := httpclient.New(log, cfg.Iconomi.BaseURL, cfg.Iconomi.Timeout, common.USER_AGENT)
	return newIconomiRepository(cfg, log, inmemoryCache, client)
}

func newIconomiRepository(cfg *config.Config, log *logger.Logger, inmemoryCache cache.Cache, client httpclient.HTTPClient) *iconomiRepository {
	perSecond := cfg.Iconomi.MaxRequestPerSecond
	return &iconomiRepository{
		cfg:            cfg,
		log:            log,
		httpClient:     client,
		cache:          inmemoryCache,
		requestLimiter: rate.NewLimiter(rate.Limit(perSecond), perSecond),
	}
}

// ListStrategies returns every strategy published on ICONOMI.
func (r *iconomiRepository) ListStrategies(ctx context.Context) ([]dto.StrategyTicker, error) {
	key := fmt.Sprintf(common.KEY_STRATEGY_LIST, r.cfg.Iconomi.Currency)
	if strategies, ok := cache.GetTyped[[]dto.StrategyTicker](r.cache, key); ok {
		return strategies, nil
	}

	var strategies []dto.StrategyTicker
	if err := r.get(ctx, "/strategies", nil, &strategies); err != nil {
		return nil, fmt.Errorf("failed to list strategies: %w", err)
	}

	r.cache.Set(key, strategies, r.cfg.Cache.ListingTTL)
	return strategies, nil
}

// GetStatistics returns the per-period returns, volatility and max drawdown of a strategy.
// The payload carries no display name, callers join it from the listing.
func (r *iconomiRepository) GetStatistics(ctx context.Context, ticker string) (*dto.StrategyStats, error) {
	key := fmt.Sprintf(common.KEY_STRATEGY_STATISTICS, ticker, r.cfg.Iconomi.Currency)
	if stats, ok := cache.GetTyped[dto.StrategyStats](r.cache, key); ok {
		return &stats, nil
	}

	var stats dto.StrategyStats
	endpoint := fmt.Sprintf("/strategies/%s/statistics", ticker)
	if err := r.get(ctx, endpoint, r.currencyParam(), &stats); err != nil {
		return nil, fmt.Errorf("failed to get statistics of %s: %w", ticker, err)
	}
	if stats.Ticker == "" {
		stats.Ticker = ticker
	}

	r.cache.Set(key, stats, r.cfg.Cache.StatisticsTTL)
	return &stats, nil
}

// GetPrice returns the latest price and AUM of a strategy.
func (r *iconomiRepository) GetPrice(ctx context.Context, ticker string) (*dto.StrategyPrice, error) {
	key := fmt.Sprintf(common.KEY_STRATEGY_PRICE, ticker, r.cfg.Iconomi.Currency)
	if price, ok := cache.GetTyped[dto.StrategyPrice](r.cache, key); ok {
		return &price, nil
	}

	var price dto.StrategyPrice
	endpoint := fmt.Sprintf("/strategies/%s/price", ticker)
	if err := r.get(ctx, endpoint, r.currencyParam(), &price); err != nil {
		return nil, fmt.Errorf("failed to get price of %s: %w", ticker, err)
	}
	if price.Ticker == "" {
		price.Ticker = ticker
	}

	r.cache.Set(key, price, r.cfg.Cache.PriceTTL)
	return &price, nil
}

func (r *iconomiRepository) currencyParam() map[string]string {
	return map[string]string{"currency": r.cfg.Iconomi.Currency}
}

func (r *iconomiRepository) get(ctx context.Context, endpoint string, queryParams map[string]string, result interface{}) error {
	if r.requestLimiter.Tokens() < 1 {
		r.log.DebugContext(ctx, "ICONOMI API request limit reached, waiting",
			logger.IntField("max_request_per_second", r.cfg.Iconomi.MaxRequestPerSecond),
			logger.StringField("endpoint", endpoint),
		)
	}
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return err
	}

	start := time.Now()
	resp, err := r.httpClient.Get(ctx, endpoint, queryParams, nil, result)
	if err != nil {
		return err
	}

	if !resp.IsSuccess() {
		r.log.ErrorContext(ctx, "ICONOMI API returned Non-OK status",
			logger.StringField("endpoint", endpoint),
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("body", string(resp.Body)))
		return fmt.Errorf("iconomi api returned status: %d", resp.StatusCode)
	}

	r.log.DebugContext(ctx, "ICONOMI API request succeeded",
		logger.StringField("endpoint", endpoint),
		logger.DurationField("elapsed", time.Since(start)),
	)
	return nil
}
