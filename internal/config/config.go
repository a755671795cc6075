// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	API        APIConfig        `koanf:"api"`
	Catalog    CatalogConfig    `koanf:"catalog"`
	Collection CollectionConfig `koanf:"collection"`
	Storage    StorageConfig    `koanf:"storage"`
	Server     ServerConfig     `koanf:"server"`
	Security   SecurityConfig   `koanf:"security"`
	Logging    LoggingConfig    `koanf:"logging"`
}

// APIConfig configures the client of the remote REST backend.
type APIConfig struct {
	BaseURL   string        `koanf:"base_url"`
	AssetURL  string        `koanf:"asset_url"`
	Timeout   time.Duration `koanf:"timeout"`
	RateLimit float64       `koanf:"rate_limit"`
	RateBurst int           `koanf:"rate_burst"`
	CacheTTL  time.Duration `koanf:"cache_ttl"`
	PageSize  int           `koanf:"page_size"`
	Breaker   BreakerConfig `koanf:"breaker"`
}

// BreakerConfig tunes the circuit breaker around the API client.
type BreakerConfig struct {
	Enabled      bool          `koanf:"enabled"`
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval"`
	Timeout      time.Duration `koanf:"timeout"`
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// CatalogConfig controls how the in-memory catalog is loaded.
type CatalogConfig struct {
	// RefreshInterval between background reloads. Zero loads once at startup.
	RefreshInterval time.Duration `koanf:"refresh_interval"`
	LoadTimeout     time.Duration `koanf:"load_timeout"`
	MockFallback    bool          `koanf:"mock_fallback"`
}

// CollectionConfig holds Collection Store settings
type CollectionConfig struct {
	Key       string        `koanf:"key"`
	Highlight time.Duration `koanf:"highlight"`
}

// StorageConfig holds the BadgerDB location
type StorageConfig struct {
	Path     string `koanf:"path"`
	InMemory bool   `koanf:"in_memory"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development, staging, production
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// SecurityConfig holds inbound CORS and rate limit settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// String summarizes the configuration without secrets for startup logs.
func (c *Config) String() string {
	return fmt.Sprintf("api=%s assets=%s storage=%s listen=%s env=%s",
		c.API.BaseURL, c.API.AssetURL, c.Storage.Path, c.Server.Addr(), c.Server.Environment)
}
