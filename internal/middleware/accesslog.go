// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/analoguememory/internal/logging"
)

// AccessLog writes one log line per request. 5xx responses log at error
// level, 4xx at warn, the rest at debug so health probes stay quiet.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		logger := logging.Ctx(r.Context())
		event := logger.Debug()
		switch {
		case rec.statusCode >= 500:
			event = logger.Error()
		case rec.statusCode >= 400:
			event = logger.Warn()
		}
		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.statusCode).
			Int("bytes", rec.bytes).
			Dur("duration", time.Since(start)).
			Str("remote_addr", r.RemoteAddr).
			Msg("HTTP request")
	})
}
