package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	App        AppConfig
	HRIS       HRISConfig
	Validation ValidationConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// HRISConfig holds the upstream HRIS API connection settings
type HRISConfig struct {
	BaseURL  string
	APIToken string
	Timeout  time.Duration
}

// ValidationConfig holds the conflict rule tuning knobs
type ValidationConfig struct {
	// MaxHoursWithHalfDayLeave is the timesheet-hours ceiling on a day that
	// also carries a half-day leave. Conflicts trigger strictly above it.
	MaxHoursWithHalfDayLeave decimal.Decimal
	// HolidayRefreshInterval is how often the background job re-fetches the
	// current month's holiday set.
	HolidayRefreshInterval time.Duration
}

func Load() (*Config, error) {
	// A missing .env just means configuration comes from the process env.
	_ = godotenv.Load()

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Upstream HRIS API configuration
	hrisTimeout, err := time.ParseDuration(getEnv("HRIS_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HRIS_TIMEOUT: %w", err)
	}

	config.HRIS = HRISConfig{
		BaseURL:  getEnv("HRIS_BASE_URL", ""),
		APIToken: getEnv("HRIS_API_TOKEN", ""),
		Timeout:  hrisTimeout,
	}

	// Validation configuration
	maxHalfDayHours, err := decimal.NewFromString(getEnv("MAX_HOURS_WITH_HALF_DAY_LEAVE", "6"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_HOURS_WITH_HALF_DAY_LEAVE: %w", err)
	}

	holidayRefresh, err := time.ParseDuration(getEnv("HOLIDAY_REFRESH_INTERVAL", "6h"))
	if err != nil {
		return nil, fmt.Errorf("invalid HOLIDAY_REFRESH_INTERVAL: %w", err)
	}

	config.Validation = ValidationConfig{
		MaxHoursWithHalfDayLeave: maxHalfDayHours,
		HolidayRefreshInterval:   holidayRefresh,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.HRIS.BaseURL == "" {
		return fmt.Errorf("HRIS_BASE_URL is required")
	}
	if !c.Validation.MaxHoursWithHalfDayLeave.IsPositive() {
		return fmt.Errorf("MAX_HOURS_WITH_HALF_DAY_LEAVE must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
