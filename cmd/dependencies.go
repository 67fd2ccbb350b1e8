package cmd

import (
	"context"

	"iconomi-ranker/config"
	"iconomi-ranker/internal/repository"
	"iconomi-ranker/internal/service"
	"iconomi-ranker/pkg/cache"
	"iconomi-ranker/pkg/logger"
	"iconomi-ranker/pkg/telegram"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AppDependency struct {
	cfg       *config.Config
	log       *logger.Logger
	validator *goValidator.Validate
	echo      *echo.Echo
	cache     cache.Cache
	notifier  telegram.Notifier
}

func NewAppDependency(ctx context.Context, withNotifier bool) (*AppDependency, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return nil, err
	}

	// keep the interface nil when Telegram is not configured
	var notifier telegram.Notifier
	if withNotifier && cfg.Telegram.Enabled() {
		bot, err := telegram.NewBot(&cfg.Telegram)
		if err != nil {
			log.Error("Failed to create telegram bot", zap.Error(err))
			return nil, err
		}
		notifier = telegram.NewTelegramNotifier(&cfg.Telegram, log, bot)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	return &AppDependency{
		cfg:       cfg,
		log:       log,
		validator: goValidator.New(),
		echo:      e,
		cache:     cache.NewCache(cfg.Cache.DefaultExpiration, cfg.Cache.CleanupInterval),
		notifier:  notifier,
	}, nil
}

func (d *AppDependency) NewService() *service.Service {
	repo := repository.NewRepository(d.cfg, d.cache, d.log)
	return service.NewService(d.cfg, d.log, repo, d.cache, d.notifier)
}

func (d *AppDependency) Close() error {
	d.log.Info("Closing app dependency")
	// stderr sync fails on some platforms, nothing to recover
	_ = d.log.Sync()
	return nil
}
