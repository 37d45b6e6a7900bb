// Package config loads shell configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// PlayerName is shown in the info panel.
	PlayerName string `env:"TETRIGO_PLAYER" envDefault:"Player"`

	// Seed pins the piece sequence. Zero means a fresh seed per game.
	Seed int64 `env:"TETRIGO_SEED"`

	// StartLevel offsets level progression and the initial fall speed.
	StartLevel int `env:"TETRIGO_LEVEL" envDefault:"0"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.StartLevel < 0 {
		return Config{}, fmt.Errorf("TETRIGO_LEVEL must not be negative, got %d", cfg.StartLevel)
	}
	return cfg, nil
}
