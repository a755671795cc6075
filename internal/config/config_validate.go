// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateAPI(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateCollection(); err != nil {
		return err
	}
	if err := c.validateStorage(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateAPI() error {
	base, err := normalizeBaseURL(c.API.BaseURL, "API_URL")
	if err != nil {
		return err
	}
	assets, err := normalizeBaseURL(c.API.AssetURL, "ASSET_URL")
	if err != nil {
		return err
	}
	c.API.BaseURL, c.API.AssetURL = base, assets

	if c.API.Timeout <= 0 {
		return fmt.Errorf("API_TIMEOUT must be positive, got %v", c.API.Timeout)
	}
	if c.API.RateLimit < 0 {
		return fmt.Errorf("API_RATE_LIMIT must not be negative")
	}
	if c.API.RateLimit > 0 && c.API.RateBurst < 1 {
		return fmt.Errorf("API_RATE_BURST must be at least 1 when rate limiting is enabled")
	}
	if c.API.CacheTTL < 0 {
		return fmt.Errorf("API_CACHE_TTL must not be negative")
	}
	if c.API.PageSize < 1 || c.API.PageSize > 1000 {
		return fmt.Errorf("API_PAGE_SIZE must be between 1 and 1000, got %d", c.API.PageSize)
	}
	return c.validateBreaker()
}

func (c *Config) validateBreaker() error {
	b := c.API.Breaker
	if !b.Enabled {
		return nil
	}
	if b.FailureRatio <= 0 || b.FailureRatio > 1 {
		return fmt.Errorf("API_BREAKER_FAILURE_RATIO must be in (0, 1], got %v", b.FailureRatio)
	}
	if b.MaxRequests == 0 {
		return fmt.Errorf("API_BREAKER_MAX_REQUESTS must be at least 1")
	}
	if b.Timeout <= 0 {
		return fmt.Errorf("API_BREAKER_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if c.Catalog.RefreshInterval < 0 {
		return fmt.Errorf("CATALOG_REFRESH_INTERVAL must not be negative")
	}
	if c.Catalog.RefreshInterval > 0 && c.Catalog.RefreshInterval < 10*time.Second {
		return fmt.Errorf("CATALOG_REFRESH_INTERVAL must be at least 10s, got %v", c.Catalog.RefreshInterval)
	}
	if c.Catalog.LoadTimeout <= 0 {
		return fmt.Errorf("CATALOG_LOAD_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateCollection() error {
	if strings.TrimSpace(c.Collection.Key) == "" {
		return fmt.Errorf("COLLECTION_KEY must not be empty")
	}
	if c.Collection.Highlight <= 0 {
		return fmt.Errorf("COLLECTION_HIGHLIGHT must be positive")
	}
	return nil
}

func (c *Config) validateStorage() error {
	if !c.Storage.InMemory && strings.TrimSpace(c.Storage.Path) == "" {
		return fmt.Errorf("STORAGE_PATH is required unless STORAGE_IN_MEMORY=true")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	switch c.Server.Environment {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("ENVIRONMENT must be development, staging, or production, got %q", c.Server.Environment)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.IsProduction() {
		for _, origin := range c.Security.CORSOrigins {
			if origin == "*" {
				return fmt.Errorf("CORS_ORIGINS must list explicit origins in production")
			}
		}
	}
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
	}
	if c.Security.RateLimitWindow < time.Second {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be at least 1s")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be trace, debug, info, warn, or error, got %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
