// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDs is stored under a single context key; both IDs are optional.
type traceIDs struct {
	request     string
	correlation string
}

type traceKey struct{}

func idsFrom(ctx context.Context) traceIDs {
	ids, _ := ctx.Value(traceKey{}).(traceIDs)
	return ids
}

// GenerateCorrelationID returns a short random ID for grouping the log lines
// of one request, including the upstream calls it makes.
func GenerateCorrelationID() string {
	return uuid.NewString()[:8]
}

// GenerateRequestID returns a UUID.
func GenerateRequestID() string {
	return uuid.NewString()
}

// ContextWithRequestID returns ctx carrying the request ID. The API client
// forwards it upstream as X-Request-ID.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	ids := idsFrom(ctx)
	ids.request = id
	return context.WithValue(ctx, traceKey{}, ids)
}

// RequestIDFromContext returns the request ID, or "".
func RequestIDFromContext(ctx context.Context) string {
	return idsFrom(ctx).request
}

// ContextWithCorrelationID returns ctx carrying the correlation ID.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	ids := idsFrom(ctx)
	ids.correlation = id
	return context.WithValue(ctx, traceKey{}, ids)
}

// ContextWithNewCorrelationID is ContextWithCorrelationID with a generated ID.
func ContextWithNewCorrelationID(ctx context.Context) context.Context {
	return ContextWithCorrelationID(ctx, GenerateCorrelationID())
}

// CorrelationIDFromContext returns the correlation ID, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	return idsFrom(ctx).correlation
}

// Ctx returns the global logger with the IDs in ctx attached.
//
//	logging.Ctx(ctx).Info().Msg("Serving similar items")
func Ctx(ctx context.Context) *zerolog.Logger {
	ids := idsFrom(ctx)
	lc := Logger().With()
	if ids.correlation != "" {
		lc = lc.Str("correlation_id", ids.correlation)
	}
	if ids.request != "" {
		lc = lc.Str("request_id", ids.request)
	}
	l := lc.Logger()
	return &l
}
