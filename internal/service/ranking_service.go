package service

import (
	"context"
	"fmt"
	"time"

	"iconomi-ranker/config"
	"iconomi-ranker/internal/dto"
	"iconomi-ranker/internal/repository"
	"iconomi-ranker/internal/stats"
	"iconomi-ranker/pkg/cache"
	"iconomi-ranker/pkg/common"
	"iconomi-ranker/pkg/logger"
	"iconomi-ranker/pkg/utils"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

type RankingService interface {
	// BuildReport runs the whole pipeline against the remote API.
	BuildReport(ctx context.Context, params dto.RankingParams) (*dto.RankingReport, error)
	// Refresh builds a report with the configured parameters and caches it.
	Refresh(ctx context.Context) (*dto.RankingReport, error)
	// GetLatestReport returns the cached report, refreshing it when there is none.
	GetLatestReport(ctx context.Context) (*dto.RankingReport, error)
	DefaultParams() dto.RankingParams
}

type rankingService struct {
	cfg         *config.Config
	log         *logger.Logger
	cache       cache.Cache
	iconomiRepo repository.IconomiRepository
	refresh     singleflight.Group
	now         func() time.Time
}

func NewRankingService(
	cfg *config.Config,
	log *logger.Logger,
	inmemoryCache cache.Cache,
	iconomiRepo repository.IconomiRepository,
) RankingService {
	return &rankingService{
		cfg:         cfg,
		log:         log,
		cache:       inmemoryCache,
		iconomiRepo: iconomiRepo,
		now:         time.Now,
	}
}

func (s *rankingService) DefaultParams() dto.RankingParams {
	return dto.RankingParams{
		AUMMin:    s.cfg.Ranking.AUMMin,
		Blacklist: s.cfg.Ranking.Blacklist,
	}
}

func (s *rankingService) BuildReport(ctx context.Context, params dto.RankingParams) (*dto.RankingReport, error) {
	strategies, err := s.iconomiRepo.ListStrategies(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to list strategies", logger.ErrorField(err))
		return nil, err
	}
	s.log.InfoContext(ctx, "Strategies listed", logger.IntField("total_strategies", len(strategies)))

	balances, err := s.fetchBalances(ctx, strategies)
	if err != nil {
		return nil, err
	}

	filtered, err := stats.FilterByAUM(strategies, balances, params.AUMMin)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to filter strategies by AUM", logger.ErrorField(err))
		return nil, err
	}
	s.log.InfoContext(ctx, "Strategies filtered by AUM",
		logger.FloatField("aum_min", params.AUMMin),
		logger.IntField("remaining_strategies", len(filtered)),
	)

	strategyStats, err := s.fetchStatistics(ctx, strategies, filtered)
	if err != nil {
		return nil, err
	}

	linear := stats.FilterBlacklist(stats.SummarizeAll(strategyStats, false), params.Blacklist)
	weighted := stats.FilterBlacklist(stats.SummarizeAll(strategyStats, true), params.Blacklist)

	linearRanking := stats.Rank(linear)
	weightedRanking := stats.Rank(weighted)

	comparison, err := stats.MergeRankings(linearRanking, weightedRanking)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to merge rankings", logger.ErrorField(err))
		return nil, err
	}

	report := &dto.RankingReport{
		GeneratedAt:   s.now(),
		AUMMin:        params.AUMMin,
		StrategyCount: len(strategyStats),
		Linear:        linearRanking,
		Weighted:      weightedRanking,
		Comparison:    comparison,
	}

	s.log.InfoContext(ctx, "Ranking report built",
		logger.IntField("strategy_count", report.StrategyCount),
		logger.IntField("ranked_strategies", len(linearRanking)),
	)
	return report, nil
}

// Refresh collapses concurrent callers into a single pipeline run. The run is detached
// from the callers' contexts and bounded by the scheduler timeout; each caller stops
// waiting when its own context is done.
func (s *rankingService) Refresh(ctx context.Context) (*dto.RankingReport, error) {
	ch := s.refresh.DoChan(common.KEY_RANKING_REPORT, func() (interface{}, error) {
		flightCtx, cancel := s.flightContext(ctx)
		defer cancel()

		report, err := s.BuildReport(flightCtx, s.DefaultParams())
		if err != nil {
			return nil, err
		}
		s.cache.Set(common.KEY_RANKING_REPORT, report, 0)
		return report, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*dto.RankingReport), nil
	}
}

func (s *rankingService) flightContext(ctx context.Context) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if s.cfg.Scheduler.TimeoutDuration <= 0 {
		return context.WithCancel(detached)
	}
	return context.WithTimeout(detached, s.cfg.Scheduler.TimeoutDuration)
}

func (s *rankingService) GetLatestReport(ctx context.Context) (*dto.RankingReport, error) {
	if report, ok := cache.GetTyped[*dto.RankingReport](s.cache, common.KEY_RANKING_REPORT); ok {
		return report, nil
	}
	return s.Refresh(ctx)
}

// fetchBalances fetches the AUM of every strategy concurrently. A price payload whose
// ticker is not in the listing leaves that strategy without a balance.
func (s *rankingService) fetchBalances(ctx context.Context, strategies []dto.StrategyTicker) (dto.Balances, error) {
	prices := make([]*dto.StrategyPrice, len(strategies))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Iconomi.MaxConcurrency)

	for i, strategy := range strategies {
		if !utils.ShouldContinue(gctx, s.log) {
			break
		}

		i, strategy := i, strategy
		g.Go(func() error {
			price, err := s.iconomiRepo.GetPrice(gctx, strategy.Ticker)
			if err != nil {
				s.log.ErrorContext(ctx, "Failed to get strategy price", logger.ErrorField(err), logger.StringField("ticker", strategy.Ticker))
				return err
			}
			prices[i] = price
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch balances: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	names := namesByTicker(strategies)
	balances := make(dto.Balances, len(prices))
	for _, price := range prices {
		name, ok := names[price.Ticker]
		if !ok {
			s.log.WarnContext(ctx, "Price returned for unknown ticker", logger.StringField("ticker", price.Ticker))
			continue
		}
		balance := 0.0
		if price.AUM != nil {
			balance = utils.Round2(*price.AUM)
		}
		balances[name] = balance
	}
	return balances, nil
}

// fetchStatistics fetches the statistics of the filtered strategies concurrently and
// joins the display name from the full listing.
func (s *rankingService) fetchStatistics(ctx context.Context, listing, filtered []dto.StrategyTicker) ([]dto.StrategyStats, error) {
	results := make([]dto.StrategyStats, len(filtered))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Iconomi.MaxConcurrency)

	for i, strategy := range filtered {
		if !utils.ShouldContinue(gctx, s.log) {
			break
		}

		i, strategy := i, strategy
		g.Go(func() error {
			st, err := s.iconomiRepo.GetStatistics(gctx, strategy.Ticker)
			if err != nil {
				s.log.ErrorContext(ctx, "Failed to get strategy statistics", logger.ErrorField(err), logger.StringField("ticker", strategy.Ticker))
				return err
			}
			results[i] = *st
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch statistics: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	names := namesByTicker(listing)
	for i := range results {
		if results[i].Ticker == "" {
			results[i].Ticker = filtered[i].Ticker
		}
		if name, ok := names[results[i].Ticker]; ok {
			results[i].Name = name
		} else {
			results[i].Name = filtered[i].Name
		}
	}
	return results, nil
}

func namesByTicker(strategies []dto.StrategyTicker) map[string]string {
	names := make(map[string]string, len(strategies))
	for _, s := range strategies {
		names[s.Ticker] = s.Name
	}
	return names
}
