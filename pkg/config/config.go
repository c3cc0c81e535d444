package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv    string `yaml:"app_env"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Actor recorded in audit stamps for CLI-driven mutations.
	Actor string `yaml:"actor"`

	// SeedDemoData preloads a few tasks and users on startup.
	SeedDemoData bool `yaml:"seed_demo_data"`
}

// Load loads configuration from environment variables. A .env file is
// honored when present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:       getEnv("APP_ENV", "development"),
		LogLevel:     getEnv("NUCLEUS_LOG_LEVEL", "info"),
		LogFormat:    getEnv("NUCLEUS_LOG_FORMAT", "text"),
		Actor:        getEnv("NUCLEUS_ACTOR", defaultActor()),
		SeedDemoData: getBoolEnv("NUCLEUS_SEED_DEMO_DATA", false),
	}

	return cfg, nil
}

// LoadFile loads configuration from a YAML file, with environment
// variables filling anything the file leaves unset.
func LoadFile(path string) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// IsDevelopment returns true when running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func defaultActor() string {
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return "local"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
