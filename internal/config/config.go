package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App   AppConfig
	Board BoardConfig
	Otel  OtelConfig
}

type AppConfig struct {
	Environment string
	LogFilePath string
	NoColor     bool
}

type BoardConfig struct {
	IdStrategy  string // "uuid" or "sequence"
	DefaultSort string
	SeedFile    string // Optional YAML fixture loaded at startup
}

type OtelConfig struct {
	Enabled  bool
	Endpoint string
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Environment: getEnv("GO_ENV", "development"),
			LogFilePath: getEnv("LOG_FILE_PATH", "board.log.json"),
			NoColor:     getEnvAsBool("BOARD_NO_COLOR", false),
		},
		Board: BoardConfig{
			IdStrategy:  getEnv("BOARD_ID_STRATEGY", "uuid"),
			DefaultSort: getEnv("BOARD_DEFAULT_SORT", "votes-desc"),
			SeedFile:    getEnv("BOARD_SEED_FILE", ""),
		},
		Otel: OtelConfig{
			Enabled:  getEnvAsBool("OTEL_ENABLED", false),
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
