package service

import (
	"iconomi-ranker/config"
	"iconomi-ranker/internal/repository"
	"iconomi-ranker/pkg/cache"
	"iconomi-ranker/pkg/logger"
	"iconomi-ranker/pkg/telegram"
)

type Service struct {
	RankingService   RankingService
	SchedulerService SchedulerService
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	inmemoryCache cache.Cache,
	notifier telegram.Notifier,
) *Service {
	rankingService := NewRankingService(cfg, log, inmemoryCache, repo.IconomiRepo)
	schedulerService := NewSchedulerService(cfg, log, rankingService, notifier)

	return &Service{
		RankingService:   rankingService,
		SchedulerService: schedulerService,
	}
}
