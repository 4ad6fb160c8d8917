package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, 14, cfg.Days)
	assert.Equal(t, 1000, cfg.StartingGold)
	assert.Equal(t, 1.2, cfg.Markup)
	assert.Equal(t, "shopsim.db", cfg.DatabasePath)
	assert.Empty(t, cfg.CatalogPath)
	assert.False(t, cfg.RevealLuck)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SHOPSIM_SEED", "42")
	t.Setenv("SHOPSIM_DAYS", "30")
	t.Setenv("SHOPSIM_STARTING_GOLD", "500")
	t.Setenv("SHOPSIM_MARKUP", "1.5")
	t.Setenv("SHOPSIM_REVEAL_LUCK", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 30, cfg.Days)
	assert.Equal(t, 500, cfg.StartingGold)
	assert.Equal(t, 1.5, cfg.Markup)
	assert.True(t, cfg.RevealLuck)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero days", "SHOPSIM_DAYS", "0"},
		{"negative gold", "SHOPSIM_STARTING_GOLD", "-1"},
		{"markup at cost", "SHOPSIM_MARKUP", "1.0"},
		{"spend fraction zero", "SHOPSIM_SPEND_FRACTION", "0"},
		{"spend fraction above one", "SHOPSIM_SPEND_FRACTION", "1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, (&Config{LogLevel: "debug"}).SlogLevel())
	assert.Equal(t, slog.LevelWarn, (&Config{LogLevel: "warn"}).SlogLevel())
	assert.Equal(t, slog.LevelError, (&Config{LogLevel: "error"}).SlogLevel())
	assert.Equal(t, slog.LevelInfo, (&Config{LogLevel: "info"}).SlogLevel())
	assert.Equal(t, slog.LevelInfo, (&Config{LogLevel: "bogus"}).SlogLevel())
}
