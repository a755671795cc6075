// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package theme

import (
	"errors"
	"testing"

	"github.com/tomtom215/analoguememory/internal/kvstore"
)

func TestPreference_DefaultsToSystem(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	s := NewStore(kv)

	if got := s.Preference(); got != System {
		t.Errorf("empty store: got %q, want system", got)
	}

	_ = kv.Set(Key, []byte("sepia"))
	if got := s.Preference(); got != System {
		t.Errorf("invalid stored mode: got %q, want system", got)
	}
}

func TestSetPreference(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	s := NewStore(kv)

	if err := s.SetPreference(Dark); err != nil {
		t.Fatalf("SetPreference: %v", err)
	}
	if got := s.Preference(); got != Dark {
		t.Errorf("got %q, want dark", got)
	}
	raw, _ := kv.Get(Key)
	if string(raw) != "dark" {
		t.Errorf("stored %q, want dark", raw)
	}

	if err := s.SetPreference("neon"); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("expected ErrInvalidMode, got %v", err)
	}
	if got := s.Preference(); got != Dark {
		t.Errorf("rejected mode must not overwrite preference, got %q", got)
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode Mode
		dark bool
		want Mode
	}{
		{Light, true, Light},
		{Dark, false, Dark},
		{System, true, Dark},
		{System, false, Light},
		{"", true, Dark},
	}
	for _, tt := range tests {
		if got := Resolve(tt.mode, tt.dark); got != tt.want {
			t.Errorf("Resolve(%q, %v) = %q, want %q", tt.mode, tt.dark, got, tt.want)
		}
	}
}

func TestPalette(t *testing.T) {
	t.Parallel()

	if Palette(Light).Primary != "#0ea5e9" || Palette(Light).Surface != "#ffffff" {
		t.Errorf("unexpected light palette %+v", Palette(Light))
	}
	if Palette(Dark).Background != "#111827" || Palette(Dark).Warning != "#fbbf24" {
		t.Errorf("unexpected dark palette %+v", Palette(Dark))
	}
	if Palette(System) != Palette(Light) {
		t.Error("unresolved mode should fall back to the light palette")
	}
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"light", "dark", "system"} {
		if _, err := ParseMode(s); err != nil {
			t.Errorf("ParseMode(%q): %v", s, err)
		}
	}
	for _, s := range []string{"", "Dark", "auto"} {
		if _, err := ParseMode(s); err == nil {
			t.Errorf("ParseMode(%q) should fail", s)
		}
	}
}
