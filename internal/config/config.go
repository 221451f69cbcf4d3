package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config configures the game service binary.
type Config struct {
	HTTPAddr string     `env:"HTTP_ADDR" envDefault:":8080"`
	DBPath   string     `env:"DB_PATH" envDefault:"data/leaderboard.db"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
}

// PlayConfig configures the terminal client binary.
type PlayConfig struct {
	ServerURL      string        `env:"SERVER_URL" envDefault:"http://localhost:8080"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	LogLevel       slog.Level    `env:"LOG_LEVEL" envDefault:"WARN"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}

func LoadPlay() (*PlayConfig, error) {
	cfg, err := env.ParseAs[PlayConfig]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
