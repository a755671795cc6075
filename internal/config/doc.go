// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

/*
Package config provides centralized configuration management for Analogue
Memory.

Configuration is layered with Koanf v2. Later layers override earlier ones:

 1. Defaults: built-in values from defaultConfig()
 2. Config file: optional YAML (CONFIG_PATH, config.yaml, config.yml,
    /etc/analoguememory/config.yaml)
 3. Environment variables: an explicit mapping table, unknown variables are
    ignored

Load additionally reads a .env file from the working directory with godotenv
before anything else, so local development does not need exported variables.

# Environment Variables

Remote API (APIConfig):
  - API_URL: REST backend base URL including /api (default: http://localhost:3000/api)
  - ASSET_URL: base URL for relative image paths (default: http://localhost:3000/assets)
  - API_TIMEOUT: per request timeout (default: 15s)
  - API_RATE_LIMIT: outbound requests per second, 0 disables (default: 10)
  - API_RATE_BURST: limiter burst (default: 20)
  - API_CACHE_TTL: GET response cache TTL, 0 disables (default: 30s)
  - API_PAGE_SIZE: page size used to load the catalog (default: 100)
  - API_BREAKER_ENABLED: wrap the client in a circuit breaker (default: true)

Catalog (CatalogConfig):
  - CATALOG_REFRESH_INTERVAL: background refresh period, 0 disables (default: 15m)
  - CATALOG_LOAD_TIMEOUT: timeout for one load (default: 30s)
  - CATALOG_MOCK_FALLBACK: serve the built-in catalog when the backend fails (default: true)

Collection (CollectionConfig):
  - COLLECTION_KEY: storage key (default: userCollection)
  - COLLECTION_HIGHLIGHT: how long a new item stays highlighted (default: 3s)

Storage (StorageConfig):
  - STORAGE_PATH: BadgerDB directory (default: ./data)
  - STORAGE_IN_MEMORY: keep everything in memory (default: false)

Server (ServerConfig):
  - HTTP_HOST, HTTP_PORT (default: 0.0.0.0:3858), HTTP_TIMEOUT, ENVIRONMENT

Security (SecurityConfig):
  - CORS_ORIGINS: comma-separated origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging (LoggingConfig):
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.Load("")
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

Config is immutable after loading and safe for concurrent reads.
*/
package config
