package service

import (
	"context"
	"fmt"

	"iconomi-ranker/config"
	"iconomi-ranker/pkg/logger"
	"iconomi-ranker/pkg/telegram"

	"github.com/robfig/cron/v3"
)

type SchedulerService interface {
	Start(ctx context.Context) error
	Stop()
	// Execute refreshes the cached ranking report and pushes it to Telegram.
	Execute(ctx context.Context) error
}

type schedulerService struct {
	cfg            *config.Config
	log            *logger.Logger
	cron           *cron.Cron
	rankingService RankingService
	notifier       telegram.Notifier
}

// NewSchedulerService creates the refresh scheduler. notifier may be nil when Telegram is not configured.
func NewSchedulerService(
	cfg *config.Config,
	log *logger.Logger,
	rankingService RankingService,
	notifier telegram.Notifier,
) *schedulerService {
	return &schedulerService{
		cfg:            cfg,
		log:            log,
		cron:           cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor))),
		rankingService: rankingService,
		notifier:       notifier,
	}
}

func (s *schedulerService) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.cfg.Scheduler.RefreshCron, func() {
		if err := s.Execute(ctx); err != nil {
			s.log.ErrorContext(ctx, "Scheduled ranking refresh failed", logger.ErrorField(err))
		}
	})
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to parse cron expression", logger.ErrorField(err), logger.StringField("refresh_cron", s.cfg.Scheduler.RefreshCron))
		return fmt.Errorf("failed to parse cron expression: %w", err)
	}

	s.log.InfoContext(ctx, "Starting ranking scheduler", logger.StringField("refresh_cron", s.cfg.Scheduler.RefreshCron))
	s.cron.Start()
	return nil
}

func (s *schedulerService) Stop() {
	s.log.Info("Stopping ranking scheduler")
	<-s.cron.Stop().Done()
	s.log.Info("Ranking scheduler stopped")
}

func (s *schedulerService) Execute(ctx context.Context) error {
	ctx = logger.NewContext(ctx, s.log.With(logger.StringField("job", "ranking_refresh")))
	newCtx, cancel := context.WithTimeout(ctx, s.cfg.Scheduler.TimeoutDuration)
	defer cancel()

	report, err := s.rankingService.Refresh(newCtx)
	if err != nil {
		return fmt.Errorf("failed to refresh ranking: %w", err)
	}

	if s.notifier == nil {
		s.log.DebugContext(ctx, "Telegram not configured, skipping ranking notification")
		return nil
	}

	message := telegram.FormatRankingReport(report, s.cfg.Ranking.TopN)
	if err := s.notifier.SendMessage(newCtx, message); err != nil {
		return fmt.Errorf("failed to send ranking notification: %w", err)
	}

	s.log.InfoContext(ctx, "Ranking notification sent", logger.IntField("strategy_count", report.StrategyCount))
	return nil
}
