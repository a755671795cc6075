// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Level != "info" {
		t.Errorf("expected default level 'info', got '%s'", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("expected default format 'json', got '%s'", cfg.Format)
	}
	if cfg.Output == nil {
		t.Error("expected default output to be set")
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{" info ", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"nonsense", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.expected {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

// Tests below mutate the global logger and must not run in parallel.

func TestInitJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})
	defer Init(DefaultConfig())

	Info().Str("item_id", "m1").Msg("added to collection")

	out := buf.String()
	for _, want := range []string{`"level":"info"`, `"item_id":"m1"`, `"message":"added to collection"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %s, got: %s", want, out)
		}
	}
}

func TestInitServiceFields(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Output: &buf, Service: "analoguememory", Version: "1.2.3"})
	defer Init(DefaultConfig())

	l := WithComponent("gateway")
	l.Info().Msg("listening")

	out := buf.String()
	for _, want := range []string{`"service":"analoguememory"`, `"version":"1.2.3"`, `"component":"gateway"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in %s", want, out)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "warn", Output: &buf})
	defer Init(DefaultConfig())

	Info().Msg("hidden")
	Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn message missing: %s", out)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer Init(DefaultConfig())

	l := WithComponent("catalog")
	l.Info().Msg("refreshed")

	if !strings.Contains(buf.String(), `"component":"catalog"`) {
		t.Errorf("expected component field, got: %s", buf.String())
	}
}

func TestCtxCarriesIDs(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer Init(DefaultConfig())

	ctx := ContextWithRequestID(context.Background(), "req-123")
	ctx = ContextWithCorrelationID(ctx, "abcd1234")
	Ctx(ctx).Info().Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"request_id":"req-123"`) {
		t.Errorf("missing request_id: %s", out)
	}
	if !strings.Contains(out, `"correlation_id":"abcd1234"`) {
		t.Errorf("missing correlation_id: %s", out)
	}
}

func TestCtxWithoutIDs(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer Init(DefaultConfig())

	Ctx(context.Background()).Info().Msg("plain")

	if strings.Contains(buf.String(), "request_id") {
		t.Errorf("unexpected request_id: %s", buf.String())
	}
}

func TestGeneratedIDs(t *testing.T) {
	t.Parallel()

	if id := GenerateCorrelationID(); len(id) != 8 {
		t.Errorf("expected 8-character correlation ID, got %q", id)
	}
	a, b := GenerateRequestID(), GenerateRequestID()
	if len(a) != 36 || a == b {
		t.Errorf("expected unique UUID request IDs, got %q and %q", a, b)
	}
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty request ID, got %q", got)
	}
}

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer Init(DefaultConfig())

	slogger := NewSlogLogger().WithGroup("supervisor").With("service", "catalog-refresh")
	slogger.Warn("service restarted", "attempt", 2)

	out := buf.String()
	for _, want := range []string{`"level":"warn"`, `"supervisor.service":"catalog-refresh"`, `"supervisor.attempt":2`, `"message":"service restarted"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in %s", want, out)
		}
	}
}
