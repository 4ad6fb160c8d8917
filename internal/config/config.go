// Package config reads simulation settings from the environment.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds the simulation driver settings.
type Config struct {
	Seed          int64   `env:"SHOPSIM_SEED" envDefault:"0"`
	Days          int     `env:"SHOPSIM_DAYS" envDefault:"14"`
	StartingGold  int     `env:"SHOPSIM_STARTING_GOLD" envDefault:"1000"`
	Markup        float64 `env:"SHOPSIM_MARKUP" envDefault:"1.2"`
	CatalogPath   string  `env:"SHOPSIM_CATALOG_PATH"`
	DatabasePath  string  `env:"SHOPSIM_DATABASE_PATH" envDefault:"shopsim.db"`
	LogLevel      string  `env:"SHOPSIM_LOG_LEVEL" envDefault:"info"`
	RevealLuck    bool    `env:"SHOPSIM_REVEAL_LUCK" envDefault:"false"`
	SpendFraction float64 `env:"SHOPSIM_SPEND_FRACTION" envDefault:"0.6"`
}

// Load parses the environment and validates the result.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Days < 1 {
		return nil, fmt.Errorf("days must be at least 1, got %d", cfg.Days)
	}
	if cfg.StartingGold < 0 {
		return nil, fmt.Errorf("starting gold must not be negative, got %d", cfg.StartingGold)
	}
	if cfg.Markup <= 1.0 {
		return nil, fmt.Errorf("markup must be above 1.0, got %g", cfg.Markup)
	}
	if cfg.SpendFraction <= 0 || cfg.SpendFraction > 1 {
		return nil, fmt.Errorf("spend fraction must be in (0, 1], got %g", cfg.SpendFraction)
	}

	return cfg, nil
}

// SlogLevel maps the configured level name onto a slog level.
// Unknown names fall back to info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
