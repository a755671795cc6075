// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/analoguememory/config.yaml",
	"/etc/analoguememory/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DotEnvFile is read by Load when present.
const DotEnvFile = ".env"

// defaultConfig returns a Config struct with all default values.
func defaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   "http://localhost:3000/api",
			AssetURL:  "http://localhost:3000/assets",
			Timeout:   15 * time.Second,
			RateLimit: 10,
			RateBurst: 20,
			CacheTTL:  30 * time.Second,
			PageSize:  100,
			Breaker: BreakerConfig{
				Enabled:      true,
				MaxRequests:  3,
				Interval:     time.Minute,
				Timeout:      30 * time.Second,
				MinRequests:  5,
				FailureRatio: 0.6,
			},
		},
		Catalog: CatalogConfig{
			RefreshInterval: 15 * time.Minute,
			LoadTimeout:     30 * time.Second,
			MockFallback:    true,
		},
		Collection: CollectionConfig{
			Key:       "userCollection",
			Highlight: 3 * time.Second,
		},
		Storage: StorageConfig{
			Path:     "./data",
			InMemory: false,
		},
		Server: ServerConfig{
			Port:        3858,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load reads .env (if present) into the process environment and then loads
// the layered configuration. configPath overrides the file search when set.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", DotEnvFile, err)
	}
	return LoadWithKoanf(configPath)
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults
//  2. Config File: configPath, or the first of CONFIG_PATH / DefaultConfigPaths
//  3. Environment Variables
func LoadWithKoanf(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths are parsed as comma-separated lists when they come from
// the environment.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Remote API
	"api_url":                   "api.base_url",
	"asset_url":                 "api.asset_url",
	"api_timeout":               "api.timeout",
	"api_rate_limit":            "api.rate_limit",
	"api_rate_burst":            "api.rate_burst",
	"api_cache_ttl":             "api.cache_ttl",
	"api_page_size":             "api.page_size",
	"api_breaker_enabled":       "api.breaker.enabled",
	"api_breaker_max_requests":  "api.breaker.max_requests",
	"api_breaker_interval":      "api.breaker.interval",
	"api_breaker_timeout":       "api.breaker.timeout",
	"api_breaker_min_requests":  "api.breaker.min_requests",
	"api_breaker_failure_ratio": "api.breaker.failure_ratio",

	// Catalog
	"catalog_refresh_interval": "catalog.refresh_interval",
	"catalog_load_timeout":     "catalog.load_timeout",
	"catalog_mock_fallback":    "catalog.mock_fallback",

	// Collection
	"collection_key":       "collection.key",
	"collection_highlight": "collection.highlight",

	// Storage
	"storage_path":      "storage.path",
	"storage_in_memory": "storage.in_memory",

	// Server
	"http_port":    "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Unmapped variables return "" and are skipped.
//
// Examples:
//   - API_URL -> api.base_url
//   - HTTP_PORT -> server.port
//   - LOG_LEVEL -> logging.level
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
