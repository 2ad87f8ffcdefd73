package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string
	HolidaysDB    string
	Env           string
	LogLevel      string
	Workers       int
	QueueSize     int
	PollTimeout   time.Duration
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()
	token := os.Getenv("TELEGRAM_TOKEN")
	if token == "" {
		return nil, ErrNoToken{}
	}
	cfg := &Config{
		TelegramToken: token,
		HolidaysDB:    getEnv("HOLIDAYS_DB", "recargos.db"),
		Env:           getEnv("APP_ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Workers:       getEnvInt("WORKERS", 4),
		QueueSize:     getEnvInt("QUEUE_SIZE", 32),
		PollTimeout:   getEnvDuration("POLL_TIMEOUT", 10*time.Second),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Workers <= 0 {
		return fmt.Errorf("WORKERS must be positive")
	}
	if c.QueueSize < 0 {
		return fmt.Errorf("QUEUE_SIZE cannot be negative")
	}
	if c.HolidaysDB == "" {
		return fmt.Errorf("HOLIDAYS_DB is required")
	}
	return nil
}

type ErrNoToken struct{}

func (e ErrNoToken) Error() string {
	return "TELEGRAM_TOKEN no está definido en el entorno"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
