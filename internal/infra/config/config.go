package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const DefaultExpression = "* * * * *"

// AppConfig holds all configuration for the library's environment driven setup
type AppConfig struct {
	LogLevel    string
	Environment string
	Expression  string // Initial expression for a Builder created from the environment
	Strict      bool   // Anchored token grammar and content checks on whole expressions
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables and a missing file is fine.
	_ = godotenv.Load()

	return fromEnv()
}

// LoadFile is Load with an explicit env file that must exist.
func LoadFile(path string) (*AppConfig, error) {
	if err := godotenv.Load(path); err != nil {
		return nil, fmt.Errorf("could not load env file %s: %w", path, err)
	}
	return fromEnv()
}

func fromEnv() (*AppConfig, error) {
	cfg := &AppConfig{}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	cfg.Expression = os.Getenv("CRON_EXPRESSION")
	if cfg.Expression == "" {
		cfg.Expression = DefaultExpression
	}

	if strictStr := os.Getenv("CRON_STRICT"); strictStr != "" {
		strict, err := strconv.ParseBool(strictStr)
		if err != nil {
			return nil, fmt.Errorf("invalid CRON_STRICT: %w", err)
		}
		cfg.Strict = strict
	}

	return cfg, nil
}
