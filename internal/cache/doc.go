// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

// Package cache provides a generic in-memory TTL cache.
//
// The API client keeps decoded GET responses from the remote catalog backend
// here so that repeated category and item lookups do not hit the network.
// Hits and misses are exported as Prometheus counters labelled by cache name.
package cache
