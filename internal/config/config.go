package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr string     `env:"HTTP_ADDR" envDefault:":8080"`
	DBPath   string     `env:"DB_PATH" envDefault:"data/game.db"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`

	// AdminPassword is the shared admin secret, either plain text or a
	// bcrypt hash. When empty the admin surface is inaccessible.
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// SeedClues inserts six placeholder clues on first run.
	SeedClues bool `env:"SEED_CLUES" envDefault:"true"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
