package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Key-value store configuration
	Store StoreConfig

	// Dashboard behaviour
	Dashboard DashboardConfig

	// Sign-in for the ads dashboard
	Auth AuthConfig

	// Logging configuration
	Log LogConfig
}

// StoreConfig selects and locates the key-value store
type StoreConfig struct {
	Driver      string // "bolt", "sqlite" or "memory"
	Path        string
	OpenTimeout time.Duration
	UsersKey    string
	AdsKey      string
	Seed        bool // write seed data when a key is absent
}

// DashboardConfig holds UI timing settings
type DashboardConfig struct {
	SearchDebounce time.Duration
	SpinnerDelay   time.Duration
	PageSize       int
}

// AuthConfig holds the admin credentials of the ads dashboard
type AuthConfig struct {
	Email        string
	PasswordHash string // bcrypt
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
	File   string // empty discards logs
}

// Load reads configuration from environment variables, after loading a .env
// file from the working directory when one exists
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{
		Store: StoreConfig{
			Driver:      getEnv("STORE_DRIVER", "bolt"),
			Path:        getEnv("STORE_PATH", "./dashboard.db"),
			OpenTimeout: getDurationEnv("STORE_OPEN_TIMEOUT", time.Second),
			UsersKey:    getEnv("USERS_KEY", "listUsers"),
			AdsKey:      getEnv("ADS_KEY", "listAds"),
			Seed:        getBoolEnv("STORE_SEED", true),
		},
		Dashboard: DashboardConfig{
			SearchDebounce: getDurationEnv("SEARCH_DEBOUNCE", 300*time.Millisecond),
			SpinnerDelay:   getDurationEnv("SPINNER_DELAY", 500*time.Millisecond),
			PageSize:       getIntEnv("PAGE_SIZE", 10),
		},
		Auth: AuthConfig{
			Email:        getEnv("ADMIN_EMAIL", "admin@example.com"),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
			File:   getEnv("LOG_FILE", "dashboard.log"),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Store.Driver != "memory" && c.Store.Path == "" {
		return fmt.Errorf("STORE_PATH is required")
	}
	if c.Store.UsersKey == "" || c.Store.AdsKey == "" {
		return fmt.Errorf("USERS_KEY and ADS_KEY are required")
	}
	if c.Store.UsersKey == c.Store.AdsKey {
		return fmt.Errorf("USERS_KEY and ADS_KEY must differ")
	}
	if c.Dashboard.SearchDebounce < 0 || c.Dashboard.SpinnerDelay < 0 {
		return fmt.Errorf("SEARCH_DEBOUNCE and SPINNER_DELAY must not be negative")
	}
	if c.Dashboard.PageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
