// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

/*
Package middleware provides the gateway's own HTTP middleware.

Key Components:

  - RequestID: reuses or generates X-Request-ID and seeds the logging context
  - PrometheusMetrics: request counters, latency histogram and in-flight gauge
  - AccessLog: one structured zerolog line per request

All middleware has the func(http.Handler) http.Handler shape used by chi.
CORS, rate limiting, panic recovery and RealIP come from chi and its
companion modules and are wired in the api package.

Typical stack:

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
