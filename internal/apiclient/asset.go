// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package apiclient

import "strings"

// AssetResolver turns image paths from the backend into absolute URLs.
type AssetResolver struct {
	base string
}

// NewAssetResolver creates a resolver rooted at base (e.g.
// "http://localhost:3000/assets").
func NewAssetResolver(base string) AssetResolver {
	return AssetResolver{base: strings.TrimSuffix(base, "/")}
}

// Resolve returns path unchanged when it already starts with "http",
// otherwise joins it to the asset base with exactly one slash.
func (a AssetResolver) Resolve(path string) string {
	if path == "" || strings.HasPrefix(path, "http") {
		return path
	}
	return a.base + "/" + strings.TrimPrefix(path, "/")
}
