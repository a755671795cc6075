// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration. Zero fields take the defaults of
// DefaultConfig.
type Config struct {
	// Level: trace, debug, info, warn, error, fatal, panic or disabled.
	Level string

	// Format: json or console.
	Format string

	// Caller adds file:line to every entry.
	Caller bool

	Output io.Writer

	// Service and Version, when set, are attached to every entry so that
	// gateway and memoryctl output can be told apart in shared sinks.
	Service string
	Version string
}

// DefaultConfig returns JSON at info level on stderr.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "json",
		Output: os.Stderr,
	}
}

var (
	mu   sync.RWMutex
	root zerolog.Logger
)

//nolint:gochecknoinits // logging must work before an explicit Init call
func init() {
	root = build(DefaultConfig())
}

// Init reconfigures the global logger. It may be called more than once.
func Init(cfg Config) {
	l := build(cfg)
	mu.Lock()
	root = l
	mu.Unlock()
}

func build(cfg Config) zerolog.Logger {
	def := DefaultConfig()
	if cfg.Level == "" {
		cfg.Level = def.Level
	}
	if cfg.Output == nil {
		cfg.Output = def.Output
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFieldName = "time"
	zerolog.MessageFieldName = "message"

	out := cfg.Output
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: "15:04:05"}
	}

	ctx := zerolog.New(out).With().Timestamp()
	if cfg.Service != "" {
		ctx = ctx.Str("service", cfg.Service)
	}
	if cfg.Version != "" {
		ctx = ctx.Str("version", cfg.Version)
	}
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// parseLevel accepts zerolog level names plus "warning" and "off". Anything
// else is info.
func parseLevel(level string) zerolog.Level {
	switch s := strings.ToLower(strings.TrimSpace(level)); s {
	case "warning":
		return zerolog.WarnLevel
	case "off":
		return zerolog.Disabled
	case "":
		return zerolog.InfoLevel
	default:
		l, err := zerolog.ParseLevel(s)
		if err != nil || l == zerolog.NoLevel {
			return zerolog.InfoLevel
		}
		return l
	}
}

// Logger returns a copy of the global logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root
}

// SetLogger replaces the global logger. Tests use it with NewTestLogger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	root = l
	mu.Unlock()
}

// WithComponent returns a child logger tagged with component.
//
//	logger := logging.WithComponent("collection")
func WithComponent(component string) zerolog.Logger {
	l := Logger()
	return l.With().Str("component", component).Logger()
}

func Debug() *zerolog.Event { l := Logger(); return l.Debug() }
func Info() *zerolog.Event  { l := Logger(); return l.Info() }
func Warn() *zerolog.Event  { l := Logger(); return l.Warn() }
func Error() *zerolog.Event { l := Logger(); return l.Error() }

// Fatal logs at fatal level and exits with status 1 once Msg is called.
func Fatal() *zerolog.Event { l := Logger(); return l.Fatal() }

// NewTestLogger returns a timestamped JSON logger writing to w.
func NewTestLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
