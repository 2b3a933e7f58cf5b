// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// RatesConfig holds the reference rates used to seed the snapshot registry
// at startup. Values are nominal annual percentages. The registry is
// replaced at runtime through the API; these are only the boot values.
type RatesConfig struct {
	CDI   float64
	SELIC float64
	IPCA  float64
}

// Config holds application configuration
type Config struct {
	LogLevel         string
	Port             int
	DevMode          bool
	Workers          int           // Worker count for batch computations (0 = NumCPU)
	RedisAddr        string        // Empty = in-memory computation cache
	SnapshotMaxAge   time.Duration // Age after which the rate snapshot is flagged stale
	WatchdogSchedule string        // Cron schedule for the snapshot staleness check
	Rates            RatesConfig
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnvAsInt("PORT", 8002),
		DevMode:          getEnvAsBool("DEV_MODE", false),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		Workers:          getEnvAsInt("SIM_WORKERS", 0),
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		SnapshotMaxAge:   time.Duration(getEnvAsInt("SNAPSHOT_MAX_AGE_MINUTES", 60)) * time.Minute,
		WatchdogSchedule: getEnv("SNAPSHOT_WATCHDOG_SCHEDULE", "@every 5m"),
		Rates: RatesConfig{
			CDI:   getEnvAsFloat("RATE_CDI", 13.15),
			SELIC: getEnvAsFloat("RATE_SELIC", 13.25),
			IPCA:  getEnvAsFloat("RATE_IPCA", 4.5),
		},
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.SnapshotMaxAge <= 0 {
		return fmt.Errorf("snapshot max age must be positive")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
