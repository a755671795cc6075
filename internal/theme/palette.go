// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package theme

// Colors is a theme palette as CSS hex colors.
type Colors struct {
	Primary       string `json:"primary" yaml:"primary"`
	Secondary     string `json:"secondary" yaml:"secondary"`
	Background    string `json:"background" yaml:"background"`
	Surface       string `json:"surface" yaml:"surface"`
	Text          string `json:"text" yaml:"text"`
	TextSecondary string `json:"textSecondary" yaml:"textSecondary"`
	Border        string `json:"border" yaml:"border"`
	Error         string `json:"error" yaml:"error"`
	Success       string `json:"success" yaml:"success"`
	Warning       string `json:"warning" yaml:"warning"`
}

var (
	lightPalette = Colors{
		Primary:       "#0ea5e9",
		Secondary:     "#8b5cf6",
		Background:    "#f9fafb",
		Surface:       "#ffffff",
		Text:          "#111827",
		TextSecondary: "#4b5563",
		Border:        "#e5e7eb",
		Error:         "#ef4444",
		Success:       "#10b981",
		Warning:       "#f59e0b",
	}

	darkPalette = Colors{
		Primary:       "#38bdf8",
		Secondary:     "#a78bfa",
		Background:    "#111827",
		Surface:       "#1f2937",
		Text:          "#f9fafb",
		TextSecondary: "#d1d5db",
		Border:        "#374151",
		Error:         "#f87171",
		Success:       "#34d399",
		Warning:       "#fbbf24",
	}
)

// Palette returns the colors of a resolved theme. Anything but Dark gets
// the light palette.
func Palette(resolved Mode) Colors {
	if resolved == Dark {
		return darkPalette
	}
	return lightPalette
}
