// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"empty api url", func(c *Config) { c.API.BaseURL = "" }, "API_URL is required"},
		{"bad asset scheme", func(c *Config) { c.API.AssetURL = "file:///tmp" }, "ASSET_URL scheme"},
		{"api url with query", func(c *Config) { c.API.BaseURL = "http://x.example/api?a=1" }, "query parameters"},
		{"api url with fragment", func(c *Config) { c.API.BaseURL = "http://x.example/api#top" }, "fragment"},
		{"asset url with credentials", func(c *Config) { c.API.AssetURL = "https://u:p@x.example/assets" }, "credentials"},
		{"zero timeout", func(c *Config) { c.API.Timeout = 0 }, "API_TIMEOUT"},
		{"negative rate", func(c *Config) { c.API.RateLimit = -1 }, "API_RATE_LIMIT"},
		{"rate without burst", func(c *Config) { c.API.RateBurst = 0 }, "API_RATE_BURST"},
		{"rate disabled ignores burst", func(c *Config) { c.API.RateLimit = 0; c.API.RateBurst = 0 }, ""},
		{"page size too big", func(c *Config) { c.API.PageSize = 5000 }, "API_PAGE_SIZE"},
		{"breaker ratio", func(c *Config) { c.API.Breaker.FailureRatio = 1.5 }, "FAILURE_RATIO"},
		{"breaker disabled skips checks", func(c *Config) { c.API.Breaker = BreakerConfig{} }, ""},
		{"refresh too fast", func(c *Config) { c.Catalog.RefreshInterval = time.Second }, "CATALOG_REFRESH_INTERVAL"},
		{"refresh disabled", func(c *Config) { c.Catalog.RefreshInterval = 0 }, ""},
		{"empty collection key", func(c *Config) { c.Collection.Key = " " }, "COLLECTION_KEY"},
		{"zero highlight", func(c *Config) { c.Collection.Highlight = 0 }, "COLLECTION_HIGHLIGHT"},
		{"no storage path", func(c *Config) { c.Storage.Path = "" }, "STORAGE_PATH"},
		{"in memory needs no path", func(c *Config) { c.Storage.Path = ""; c.Storage.InMemory = true }, ""},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, "HTTP_PORT"},
		{"bad environment", func(c *Config) { c.Server.Environment = "prod" }, "ENVIRONMENT"},
		{"wildcard cors in production", func(c *Config) { c.Server.Environment = "production" }, "CORS_ORIGINS"},
		{"explicit cors in production", func(c *Config) {
			c.Server.Environment = "production"
			c.Security.CORSOrigins = []string{"https://memories.example"}
		}, ""},
		{"rate limit window", func(c *Config) { c.Security.RateLimitWindow = 0 }, "RATE_LIMIT_WINDOW"},
		{"disabled rate limit", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, ""},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigHelpers(t *testing.T) {
	cfg := defaultConfig()
	if cfg.IsProduction() {
		t.Error("defaults are not production")
	}
	if s := cfg.String(); !strings.Contains(s, "listen=0.0.0.0:3858") {
		t.Errorf("String() = %q", s)
	}

	cfg.Server.Host = "::1"
	if got := cfg.Server.Addr(); got != "[::1]:3858" {
		t.Errorf("Addr() = %q", got)
	}
}

func TestValidate_TrimsTrailingSlash(t *testing.T) {
	cfg := defaultConfig()
	cfg.API.BaseURL = "https://memories.example/api/"
	cfg.API.AssetURL = "https://cdn.example//"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if cfg.API.BaseURL != "https://memories.example/api" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.AssetURL != "https://cdn.example" {
		t.Errorf("AssetURL = %q", cfg.API.AssetURL)
	}
}
