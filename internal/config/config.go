package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Log output targets accepted in PARKING_LOG_OUTPUT.
const (
	LogStderr = "stderr"
	LogStdout = "stdout"
	LogNone   = "none"
)

type Config struct {
	SeedPath  string
	Timezone  string
	LogOutput string
}

// Load loads configuration from environment variables only.
func Load() (*Config, error) {
	return LoadWithFile("")
}

// LoadWithFile loads configuration from an optional .env file and environment variables.
func LoadWithFile(envFile string) (*Config, error) {
	// A missing .env is fine; everything has a default.
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{
		SeedPath:  strings.TrimSpace(os.Getenv("PARKING_SEED_PATH")),
		Timezone:  getEnvOrDefault("PARKING_TIMEZONE", "Local"),
		LogOutput: strings.ToLower(getEnvOrDefault("PARKING_LOG_OUTPUT", LogStderr)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the timezone resolves and the log target is known.
func (c *Config) Validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}
	switch c.LogOutput {
	case LogStderr, LogStdout, LogNone:
	default:
		return fmt.Errorf("PARKING_LOG_OUTPUT must be one of %s, %s, %s (got %q)", LogStderr, LogStdout, LogNone, c.LogOutput)
	}
	return nil
}

// Location resolves the configured timezone used by the pricing clock.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("PARKING_TIMEZONE is invalid: %w", err)
	}
	return loc, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
