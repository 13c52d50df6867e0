package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"GO_ENV", "LOG_FILE_PATH", "BOARD_NO_COLOR", "BOARD_ID_STRATEGY", "BOARD_DEFAULT_SORT", "BOARD_SEED_FILE", "OTEL_ENABLED", "OTEL_EXPORTER_OTLP_ENDPOINT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	// Empty values are still "set", so only the bool parsers fall back
	assert.False(t, cfg.App.NoColor)
	assert.False(t, cfg.Otel.Enabled)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("LOG_FILE_PATH", "/tmp/board.json")
	t.Setenv("BOARD_NO_COLOR", "true")
	t.Setenv("BOARD_ID_STRATEGY", "sequence")
	t.Setenv("BOARD_DEFAULT_SORT", "title")
	t.Setenv("BOARD_SEED_FILE", "seed.yaml")
	t.Setenv("OTEL_ENABLED", "1")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4318")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "/tmp/board.json", cfg.App.LogFilePath)
	assert.True(t, cfg.App.NoColor)
	assert.Equal(t, "sequence", cfg.Board.IdStrategy)
	assert.Equal(t, "title", cfg.Board.DefaultSort)
	assert.Equal(t, "seed.yaml", cfg.Board.SeedFile)
	assert.True(t, cfg.Otel.Enabled)
	assert.Equal(t, "collector:4318", cfg.Otel.Endpoint)
}

func TestGetEnvFallback(t *testing.T) {
	assert.Equal(t, "fallback", getEnv("BOARD_TEST_UNSET_KEY", "fallback"))

	t.Setenv("BOARD_TEST_BOOL", "not-a-bool")
	assert.True(t, getEnvAsBool("BOARD_TEST_BOOL", true))
}
