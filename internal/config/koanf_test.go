// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate runs the test in an empty directory with no config file.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(ConfigPathEnvVar, "")
	return dir
}

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.API.BaseURL != "http://localhost:3000/api" {
		t.Errorf("API.BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.AssetURL != "http://localhost:3000/assets" {
		t.Errorf("API.AssetURL = %q", cfg.API.AssetURL)
	}
	if cfg.API.PageSize != 100 {
		t.Errorf("API.PageSize = %d, want 100", cfg.API.PageSize)
	}
	if !cfg.API.Breaker.Enabled {
		t.Error("API.Breaker.Enabled should be true by default")
	}
	if cfg.Collection.Key != "userCollection" {
		t.Errorf("Collection.Key = %q, want userCollection", cfg.Collection.Key)
	}
	if cfg.Collection.Highlight != 3*time.Second {
		t.Errorf("Collection.Highlight = %v, want 3s", cfg.Collection.Highlight)
	}
	if !cfg.Catalog.MockFallback {
		t.Error("Catalog.MockFallback should be true by default")
	}
	if cfg.Server.Port != 3858 {
		t.Errorf("Server.Port = %d, want 3858", cfg.Server.Port)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

// TestEnvTransformFunc verifies environment variable name transformations
func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"API_URL", "api.base_url"},
		{"ASSET_URL", "api.asset_url"},
		{"API_CACHE_TTL", "api.cache_ttl"},
		{"API_BREAKER_FAILURE_RATIO", "api.breaker.failure_ratio"},
		{"CATALOG_MOCK_FALLBACK", "catalog.mock_fallback"},
		{"COLLECTION_HIGHLIGHT", "collection.highlight"},
		{"STORAGE_PATH", "storage.path"},
		{"HTTP_PORT", "server.port"},
		{"ENVIRONMENT", "server.environment"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"LOG_LEVEL", "logging.level"},
		{"log_format", "logging.format"},

		// Unknown (should return empty)
		{"RANDOM_VAR", ""},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := envTransformFunc(tt.input); got != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadWithKoanf("")
	if err != nil {
		t.Fatalf("LoadWithKoanf: %v", err)
	}
	if cfg.API.Timeout != 15*time.Second {
		t.Errorf("API.Timeout = %v, want 15s", cfg.API.Timeout)
	}
	if cfg.Server.Addr() != "0.0.0.0:3858" {
		t.Errorf("Server.Addr() = %q", cfg.Server.Addr())
	}
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("API_URL", "https://memories.example/api")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("COLLECTION_HIGHLIGHT", "5s")
	t.Setenv("CATALOG_MOCK_FALLBACK", "false")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("API_BREAKER_MAX_REQUESTS", "7")

	cfg, err := LoadWithKoanf("")
	if err != nil {
		t.Fatalf("LoadWithKoanf: %v", err)
	}
	if cfg.API.BaseURL != "https://memories.example/api" {
		t.Errorf("API.BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Collection.Highlight != 5*time.Second {
		t.Errorf("Collection.Highlight = %v, want 5s", cfg.Collection.Highlight)
	}
	if cfg.Catalog.MockFallback {
		t.Error("Catalog.MockFallback should be overridden to false")
	}
	if cfg.API.Breaker.MaxRequests != 7 {
		t.Errorf("API.Breaker.MaxRequests = %d, want 7", cfg.API.Breaker.MaxRequests)
	}
	want := []string{"https://a.example", "https://b.example"}
	if strings.Join(cfg.Security.CORSOrigins, "|") != strings.Join(want, "|") {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
}

func TestLoadWithKoanf_FileThenEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	yamlBody := `
api:
  base_url: https://file.example/api
  page_size: 50
catalog:
  refresh_interval: 1m
logging:
  level: debug
security:
  cors_origins:
    - https://file.example
`
	if err := os.WriteFile(path, []byte(yamlBody), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadWithKoanf(path)
	if err != nil {
		t.Fatalf("LoadWithKoanf: %v", err)
	}
	if cfg.API.BaseURL != "https://file.example/api" || cfg.API.PageSize != 50 {
		t.Errorf("file values not applied: %+v", cfg.API)
	}
	if cfg.Catalog.RefreshInterval != time.Minute {
		t.Errorf("Catalog.RefreshInterval = %v, want 1m", cfg.Catalog.RefreshInterval)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("env should override file, Logging.Level = %q", cfg.Logging.Level)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "https://file.example" {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
}

func TestLoadWithKoanf_InvalidFails(t *testing.T) {
	isolate(t)
	t.Setenv("API_URL", "ftp://memories.example")

	if _, err := LoadWithKoanf(""); err == nil {
		t.Fatal("expected validation error for ftp scheme")
	}
}

// TestFindConfigFile verifies config file discovery
func TestFindConfigFile(t *testing.T) {
	dir := isolate(t)

	if got := findConfigFile(); got != "" {
		t.Errorf("findConfigFile() = %q, want empty", got)
	}

	if err := os.WriteFile("config.yml", []byte("logging:\n  level: debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if got := findConfigFile(); got != "config.yml" {
		t.Errorf("findConfigFile() = %q, want config.yml", got)
	}

	override := filepath.Join(dir, "override.yaml")
	if err := os.WriteFile(override, []byte("{}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, override)
	if got := findConfigFile(); got != override {
		t.Errorf("findConfigFile() = %q, want %q", got, override)
	}
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	isolate(t)
	if err := os.WriteFile(DotEnvFile, []byte("COLLECTION_KEY=fromDotEnv\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	// Registers cleanup; godotenv never overrides a set variable.
	t.Setenv("COLLECTION_KEY", "")
	os.Unsetenv("COLLECTION_KEY")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Collection.Key != "fromDotEnv" {
		t.Errorf("Collection.Key = %q, want fromDotEnv", cfg.Collection.Key)
	}
}

func TestLoad_MissingDotEnvIsFine(t *testing.T) {
	isolate(t)

	if _, err := Load(""); err != nil {
		t.Errorf("Load without .env: %v", err)
	}
}
