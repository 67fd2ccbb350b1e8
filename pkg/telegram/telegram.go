package telegram

import (
	"context"
	"net/http"

	"iconomi-ranker/config"
	"iconomi-ranker/pkg/logger"

	"golang.org/x/time/rate"
	"gopkg.in/telebot.v3"
)

// Notifier pushes plain messages to a preconfigured chat.
type Notifier interface {
	SendMessage(ctx context.Context, message string) error
}

// Sender is the part of *telebot.Bot the notifier needs.
type Sender interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

type TelegramNotifier struct {
	cfg           *config.TelegramConfig
	log           *logger.Logger
	sender        Sender
	globalLimiter *rate.Limiter
}

// NewBot creates a send-only bot, no poller is started.
func NewBot(cfg *config.TelegramConfig) (*telebot.Bot, error) {
	return telebot.NewBot(telebot.Settings{
		Token:  cfg.BotToken,
		Client: &http.Client{Timeout: cfg.TimeoutDuration},
	})
}

func NewTelegramNotifier(cfg *config.TelegramConfig, log *logger.Logger, sender Sender) *TelegramNotifier {
	return &TelegramNotifier{
		cfg:           cfg,
		log:           log,
		sender:        sender,
		globalLimiter: rate.NewLimiter(rate.Limit(cfg.MaxGlobalRequestPerSecond), cfg.MaxGlobalRequestPerSecond),
	}
}

func (t *TelegramNotifier) SendMessage(ctx context.Context, message string) error {
	if err := t.globalLimiter.Wait(ctx); err != nil {
		t.log.ErrorContext(ctx, "Failed to wait for global rate limit", logger.ErrorField(err))
		return err
	}

	_, err := t.sender.Send(&telebot.Chat{ID: t.cfg.ChatID}, message, telebot.ModeMarkdown)
	if err != nil {
		t.log.ErrorContext(ctx, "Failed to send message", logger.ErrorField(err))
		return err
	}
	return nil
}
