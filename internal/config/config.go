// Package config centralises environment configuration for the ftracker CLI.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Config captures runtime defaults. Command-line flags override every field.
type Config struct {
	LogLevel     string
	LogFormat    string  // text|json
	WeightKG     float64 // athlete weight for FIT imports, 0 when unset
	HeightCM     float64 // athlete height for FIT imports, 0 when unset
	ExportFormat string  // json|csv|parquet
}

// Load reads FTRACKER_* environment variables, falling back to defaults.
func Load() Config {
	return Config{
		LogLevel:     strings.ToLower(getEnv("FTRACKER_LOG_LEVEL", "info")),
		LogFormat:    strings.ToLower(getEnv("FTRACKER_LOG_FORMAT", "text")),
		WeightKG:     getFloatEnv("FTRACKER_WEIGHT_KG", 0),
		HeightCM:     getFloatEnv("FTRACKER_HEIGHT_CM", 0),
		ExportFormat: strings.ToLower(getEnv("FTRACKER_EXPORT_FORMAT", "json")),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func getFloatEnv(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil && parsed >= 0 {
			return parsed
		}
	}
	return fallback
}
