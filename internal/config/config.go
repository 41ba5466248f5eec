package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DeepSeek  DeepSeekConfig  `yaml:"deepseek"`
	Market    MarketConfig    `yaml:"market"`
	Portfolio PortfolioConfig `yaml:"portfolio"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Web       WebConfig       `yaml:"web"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type DeepSeekConfig struct {
	APIKey         string `yaml:"api_key"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type MarketConfig struct {
	QuoteURL       string `yaml:"quote_url"`
	RefreshCron    string `yaml:"refresh_cron"`
	PredictionCron string `yaml:"prediction_cron"`
}

type PortfolioConfig struct {
	Timeframes      []string `yaml:"timeframes"`
	DefaultStrategy string   `yaml:"default_strategy"`
}

type TelegramConfig struct {
	Enabled  bool   `yaml:"enabled"`
	BotToken string `yaml:"bot_token"`
	ChatID   int64  `yaml:"chat_id"`
}

type WebConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.DeepSeek.Model == "" {
		cfg.DeepSeek.Model = "deepseek-chat"
	}
	if cfg.DeepSeek.TimeoutSeconds == 0 {
		cfg.DeepSeek.TimeoutSeconds = 120
	}
	if cfg.Market.RefreshCron == "" {
		cfg.Market.RefreshCron = "*/15 * * * *"
	}
	if cfg.Market.PredictionCron == "" {
		cfg.Market.PredictionCron = "0 */4 * * *"
	}
	if len(cfg.Portfolio.Timeframes) == 0 {
		cfg.Portfolio.Timeframes = []string{"1d", "1w", "1m"}
	}
	if cfg.Portfolio.DefaultStrategy == "" {
		cfg.Portfolio.DefaultStrategy = "ai-prophet"
	}
	if cfg.Web.Port == 0 {
		cfg.Web.Port = 8080
	}
	if len(cfg.Web.AllowedOrigins) == 0 {
		cfg.Web.AllowedOrigins = []string{"*"}
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

func (c *Config) Validate() error {
	if c.DeepSeek.APIKey == "" {
		return fmt.Errorf("deepseek.api_key is required")
	}
	if c.Market.QuoteURL == "" {
		return fmt.Errorf("market.quote_url is required")
	}
	if c.Telegram.Enabled {
		if c.Telegram.BotToken == "" {
			return fmt.Errorf("telegram.bot_token is required when telegram is enabled")
		}
		if c.Telegram.ChatID == 0 {
			return fmt.Errorf("telegram.chat_id is required when telegram is enabled")
		}
	}
	return nil
}

func (c *Config) DeepSeekTimeout() time.Duration {
	return time.Duration(c.DeepSeek.TimeoutSeconds) * time.Second
}
