// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

// Package theme stores the light/dark/system preference and maps it to a
// color palette.
package theme

import (
	"errors"
	"fmt"

	"github.com/tomtom215/analoguememory/internal/kvstore"
	"github.com/tomtom215/analoguememory/internal/logging"
)

// Key is the storage key of the preference.
const Key = "theme"

// Mode is a theme preference.
type Mode string

const (
	Light  Mode = "light"
	Dark   Mode = "dark"
	System Mode = "system"
)

// ErrInvalidMode is returned for modes other than light, dark and system.
var ErrInvalidMode = errors.New("invalid theme mode")

// ParseMode validates s.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case Light, Dark, System:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Store persists the preference.
type Store struct {
	kv kvstore.Store
}

// NewStore creates a Store over kv.
func NewStore(kv kvstore.Store) *Store {
	return &Store{kv: kv}
}

// Preference returns the stored mode, or System when none is stored or the
// stored value is not a known mode.
func (s *Store) Preference() Mode {
	raw, err := s.kv.Get(Key)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			logging.Debug().Err(err).Msg("Theme preference unreadable, using system")
		}
		return System
	}
	m, err := ParseMode(string(raw))
	if err != nil {
		return System
	}
	return m
}

// SetPreference validates and stores mode.
func (s *Store) SetPreference(mode Mode) error {
	if _, err := ParseMode(string(mode)); err != nil {
		return err
	}
	if err := s.kv.Set(Key, []byte(mode)); err != nil {
		return fmt.Errorf("store theme preference: %w", err)
	}
	return nil
}

// Resolve maps a preference to the concrete Light or Dark theme.
func Resolve(mode Mode, systemPrefersDark bool) Mode {
	switch mode {
	case Light, Dark:
		return mode
	default:
		if systemPrefersDark {
			return Dark
		}
		return Light
	}
}
