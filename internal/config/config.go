package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server settings
	Host string
	Port string

	// Database settings
	DatabasePath string

	// Logging settings
	LogLevel  string
	LogFormat string

	// Cache settings
	CacheSize int
	CacheTTL  time.Duration

	// Registry settings
	RegistryName string
	TimeZone     string

	// Scheduling settings. Hearings without a recorded time render at
	// DefaultHearingHour; every calendar event spans HearingDuration.
	// Neither is backed by a domain field, so both stay configurable.
	DefaultHearingHour int
	HearingDuration    time.Duration

	// Session settings
	SessionSecret string
	AuthRequired  bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Not an error if .env doesn't exist
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{
		Host:          getEnv("HOST", "0.0.0.0"),
		Port:          getEnv("PORT", "8080"),
		DatabasePath:  getEnv("DATABASE_PATH", "./data/court_registry.db"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
		RegistryName:  getEnv("REGISTRY_NAME", "High Court Registry"),
		TimeZone:      getEnv("TIMEZONE", "Local"),
		SessionSecret: getEnv("SESSION_SECRET", ""),
	}

	// Parse integer values
	var err error
	cfg.CacheSize, err = strconv.Atoi(getEnv("CACHE_SIZE", "1000"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_SIZE: %w", err)
	}

	cacheTTL, err := strconv.Atoi(getEnv("CACHE_TTL", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = time.Duration(cacheTTL) * time.Minute

	cfg.DefaultHearingHour, err = strconv.Atoi(getEnv("DEFAULT_HEARING_HOUR", "9"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_HEARING_HOUR: %w", err)
	}
	if cfg.DefaultHearingHour < 0 || cfg.DefaultHearingHour > 23 {
		return nil, fmt.Errorf("DEFAULT_HEARING_HOUR out of range: %d", cfg.DefaultHearingHour)
	}

	hearingDuration, err := strconv.Atoi(getEnv("HEARING_DURATION_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid HEARING_DURATION_MINUTES: %w", err)
	}
	cfg.HearingDuration = time.Duration(hearingDuration) * time.Minute

	cfg.AuthRequired = getEnv("AUTH_REQUIRED", "false") == "true"

	return cfg, nil
}

// Location resolves the configured time zone, falling back to the system
// local zone when the name cannot be loaded.
func (c *Config) Location() *time.Location {
	if c.TimeZone == "" || c.TimeZone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
