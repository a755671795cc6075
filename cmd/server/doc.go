// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

// Package main is the entry point for the Analogue Memory gateway.
//
// The gateway keeps an in-memory snapshot of the nostalgia catalog loaded
// from the remote REST backend, serves filtering, similarity ranking and
// share links over HTTP, and persists the personal collection, theme
// preference and session in BadgerDB.
//
// Startup order:
//
//  1. Configuration: defaults, config.yaml, .env and environment (koanf v2)
//  2. Logging: zerolog with the configured level and format
//  3. Storage: BadgerDB for durable state, memory for session-only state
//  4. Backend client: rate limited, cached, behind a circuit breaker
//  5. Stores: catalog, collection, theme, auth
//  6. Supervisor tree: catalog refresh and HTTP server
//
// The server shuts down gracefully on SIGINT and SIGTERM.
//
// Example:
//
//	export API_URL=https://memories.example/api
//	export ASSET_URL=https://memories.example/assets
//	export CORS_ORIGINS=https://app.example
//	export CONFIG_PATH=/etc/analoguememory/config.yaml
//	./analoguememory
package main
