// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

/*
Package metrics provides Prometheus metrics for the Analogue Memory gateway.

# Overview

The package provides metrics for:
  - Gateway HTTP request latency and throughput
  - Requests to the remote catalog backend
  - Catalog snapshot size and refresh outcomes
  - Personal collection size and mutations
  - API client response cache hit/miss rates
  - Circuit breaker state transitions

Metrics are registered with the default registry through promauto and served
at /metrics:

	curl http://localhost:8080/metrics

# Usage

	start := time.Now()
	items, err := client.AllItems(ctx)
	metrics.RecordCatalogRefresh("remote", len(items), len(cats), time.Since(start), err)
*/
package metrics
