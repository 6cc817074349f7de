package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/sitestead/sitestead/internal/steadd/semver"
)

// Config holds the daemon configuration
type Config struct {
	// Server
	Port    string
	APIKeys []string

	// Database
	DBPath string

	// Platform
	PlatformVersion string
	AppsManifest    string

	// Docs store (optional)
	DocsS3Bucket string
	DocsS3Region string

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		APIKeys:         splitList(getEnv("API_KEYS", "")),
		DBPath:          getEnv("DB_PATH", "./data/steadd.db"),
		PlatformVersion: getEnv("PLATFORM_VERSION", ""),
		AppsManifest:    getEnv("APPS_MANIFEST", ""),
		DocsS3Bucket:    getEnv("DOCS_S3_BUCKET", ""),
		DocsS3Region:    getEnv("DOCS_S3_REGION", "us-east-1"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if len(cfg.APIKeys) == 0 {
		return nil, fmt.Errorf("API_KEYS is required")
	}

	if cfg.PlatformVersion == "" {
		return nil, fmt.Errorf("PLATFORM_VERSION is required")
	}
	if !semver.IsValid(cfg.PlatformVersion) {
		return nil, fmt.Errorf("PLATFORM_VERSION %q is not a valid version", cfg.PlatformVersion)
	}

	return cfg, nil
}

// ValidateAPIKey checks a presented key against the configured set
func (c *Config) ValidateAPIKey(key string) bool {
	for _, k := range c.APIKeys {
		if k == key {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
