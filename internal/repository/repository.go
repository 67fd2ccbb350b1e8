package repository

import (
	"iconomi-ranker/config"
	"iconomi-ranker/pkg/cache"
	"iconomi-ranker/pkg/logger"
)

type Repository struct {
	IconomiRepo IconomiRepository
}

func NewRepository(cfg *config.Config, inmemoryCache cache.Cache, log *logger.Logger) *Repository {
	return &Repository{
		IconomiRepo: NewIconomiRepository(cfg, log, inmemoryCache),
	}
}
