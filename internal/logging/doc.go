// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

// Package logging provides centralized zerolog-based logging for Analogue Memory.
//
// Both the gateway server and the memoryctl client log through this package:
//
//   - JSON output for production, console output for development
//   - Context-aware logging with request and correlation ID propagation
//   - Component loggers for the catalog, collection and API client layers
//   - An slog adapter for libraries that require *slog.Logger (sutureslog)
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Msg("Gateway starting")
//	logging.Error().Err(err).Msg("Catalog refresh failed")
//	logging.Ctx(ctx).Info().Str("item_id", id).Msg("Added to collection")
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event
// is never emitted.
package logging
