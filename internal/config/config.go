// Package config provides configuration management for the application
package config

import (
	"os"
	"strconv"
	"time"
)

// CatalogConfig holds catalog file and clock configuration
type CatalogConfig struct {
	// Path to the OpenClassrooms JSON export
	Path string
	// Timezone is the IANA zone name all availability is computed in
	Timezone string
	// RefreshSpec is a cron expression for periodic catalog reloads
	RefreshSpec string
}

// RedisConfig holds Redis/Valkey configuration
type RedisConfig struct {
	Enabled bool
	// URI is prioritized if provided, otherwise individual connection parameters are used
	URI       string
	Host      string
	Port      string
	Username  string
	Password  string
	DB        int
	KeyPrefix string
	// TTL for the stored catalog (0 means no expiration)
	CatalogTTL time.Duration
}

// GetCatalogConfig loads catalog configuration from environment variables
func GetCatalogConfig() CatalogConfig {
	return CatalogConfig{
		Path:        getEnv("CATALOG_PATH", "OpenClassrooms.json"),
		Timezone:    getEnv("TIMEZONE", "America/Chicago"),
		RefreshSpec: getEnv("CATALOG_REFRESH_SPEC", "@hourly"),
	}
}

// GetRedisConfig loads Redis/Valkey configuration from environment variables
func GetRedisConfig() RedisConfig {
	// Parse TTL from environment variable (in hours)
	ttlHours, _ := strconv.Atoi(getEnv("REDIS_CATALOG_TTL_HOURS", "0"))
	ttl := time.Duration(ttlHours) * time.Hour

	// Parse DB index
	db, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	return RedisConfig{
		Enabled:    getEnvBool("REDIS_ENABLED", false),
		URI:        getEnv("REDIS_URI_LUTHERSPOTS", ""),
		Host:       getEnv("REDIS_HOST_LUTHERSPOTS", getEnv("REDIS_ADDRESS", "localhost")),
		Port:       getEnv("REDIS_PORT_LUTHERSPOTS", "6379"),
		Username:   getEnv("REDIS_USERNAME_LUTHERSPOTS", ""),
		Password:   getEnv("REDIS_PASSWORD_LUTHERSPOTS", getEnv("REDIS_PASSWORD", "")),
		DB:         db,
		KeyPrefix:  getEnv("REDIS_KEY_PREFIX", "lutherspots:"),
		CatalogTTL: ttl,
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvBool retrieves a boolean environment variable
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
