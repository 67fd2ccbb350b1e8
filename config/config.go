package config

import (
	"fmt"
	"strings"
	"time"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Log       Logger         `mapstructure:"logger"`
	API       API            `mapstructure:"api"`
	Iconomi   Iconomi        `mapstructure:"iconomi"`
	Ranking   Ranking        `mapstructure:"ranking"`
	Cache     Cache          `mapstructure:"cache"`
	Scheduler Scheduler      `mapstructure:"scheduler"`
	Telegram  TelegramConfig `mapstructure:"telegram"`
}

type Logger struct {
	Level    string `mapstructure:"level" validate:"required"`
	Encoding string `mapstructure:"encoding" validate:"oneof=json console"`
}

type API struct {
	Port             int `mapstructure:"port" validate:"min=1,max=65535"`
	RequestPerSecond int `mapstructure:"request_per_second" validate:"min=1"`
	RequestBurst     int `mapstructure:"request_burst" validate:"min=1"`
}

type Iconomi struct {
	BaseURL             string        `mapstructure:"base_url" validate:"required,url"`
	Currency            string        `mapstructure:"currency" validate:"required"`
	Timeout             time.Duration `mapstructure:"timeout" validate:"gt=0"`
	MaxRequestPerSecond int           `mapstructure:"max_request_per_second" validate:"min=1"`
	MaxConcurrency      int           `mapstructure:"max_concurrency" validate:"min=1"`
}

type Ranking struct {
	AUMMin    float64  `mapstructure:"aum_min" validate:"min=0"`
	TopN      int      `mapstructure:"top_n" validate:"min=1"`
	Blacklist []string `mapstructure:"blacklist"`
}

type Cache struct {
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
	ListingTTL        time.Duration `mapstructure:"listing_ttl"`
	StatisticsTTL     time.Duration `mapstructure:"statistics_ttl"`
	PriceTTL          time.Duration `mapstructure:"price_ttl"`
}

type Scheduler struct {
	RefreshCron     string        `mapstructure:"refresh_cron" validate:"required"`
	TimeoutDuration time.Duration `mapstructure:"timeout_duration" validate:"gt=0"`
}

type TelegramConfig struct {
	BotToken                  string        `mapstructure:"bot_token"`
	ChatID                    int64         `mapstructure:"chat_id"`
	TimeoutDuration           time.Duration `mapstructure:"timeout_duration"`
	MaxGlobalRequestPerSecond int           `mapstructure:"max_global_request_per_second" validate:"min=1"`
}

// Enabled reports whether a ranking report can be pushed to Telegram.
func (t TelegramConfig) Enabled() bool {
	return t.BotToken != "" && t.ChatID != 0
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "console")

	v.SetDefault("api.port", 8080)
	v.SetDefault("api.request_per_second", 10)
	v.SetDefault("api.request_burst", 30)

	v.SetDefault("iconomi.base_url", "https://api.iconomi.com/v1")
	v.SetDefault("iconomi.currency", "EUR")
	v.SetDefault("iconomi.timeout", 15*time.Second)
	v.SetDefault("iconomi.max_request_per_second", 10)
	v.SetDefault("iconomi.max_concurrency", 8)

	v.SetDefault("ranking.aum_min", 500_000)
	v.SetDefault("ranking.top_n", 15)
	v.SetDefault("ranking.blacklist", []string{})

	v.SetDefault("cache.default_expiration", 10*time.Minute)
	v.SetDefault("cache.cleanup_interval", 20*time.Minute)
	v.SetDefault("cache.listing_ttl", time.Hour)
	v.SetDefault("cache.statistics_ttl", 30*time.Minute)
	v.SetDefault("cache.price_ttl", 10*time.Minute)

	v.SetDefault("scheduler.refresh_cron", "0 */6 * * *")
	v.SetDefault("scheduler.timeout_duration", 5*time.Minute)

	v.SetDefault("telegram.timeout_duration", 10*time.Second)
	v.SetDefault("telegram.max_global_request_per_second", 1)
}

// Load reads config.yaml from the working directory (or configPath when given),
// .env and the environment, in increasing order of precedence.
func Load(configPath string) (*Config, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configPath != "" {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := goValidator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
