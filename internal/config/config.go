package config

import (
	"fmt"
	"os"
)

type Config struct {
	AppEnv        string
	Port          string
	RedisURL      string
	SlackBotToken string
	SlackAppToken string
	LogLevel      string
	LogFormat     string
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		Port:          getEnv("PORT", "8080"),
		RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379"),
		SlackBotToken: getEnv("SLACK_BOT_TOKEN", ""),
		SlackAppToken: getEnv("SLACK_APP_TOKEN", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
	}

	if cfg.SlackBotToken == "" {
		return nil, fmt.Errorf("SLACK_BOT_TOKEN is required")
	}
	if cfg.SlackAppToken == "" {
		return nil, fmt.Errorf("SLACK_APP_TOKEN is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
