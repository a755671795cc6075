// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package api

import (
	"net/http"

	"github.com/tomtom215/analoguememory/internal/theme"
)

// ThemeResponse is the payload of theme endpoints.
type ThemeResponse struct {
	Mode     theme.Mode   `json:"mode"`
	Resolved theme.Mode   `json:"resolved"`
	Colors   theme.Colors `json:"colors"`
}

func themeResponse(mode theme.Mode, systemDark bool) ThemeResponse {
	resolved := theme.Resolve(mode, systemDark)
	return ThemeResponse{Mode: mode, Resolved: resolved, Colors: theme.Palette(resolved)}
}

// Theme returns the stored preference. ?system=dark tells the gateway what
// the caller's platform prefers when the preference is "system".
func (h *Handler) Theme(w http.ResponseWriter, r *http.Request) {
	systemDark := r.URL.Query().Get("system") == string(theme.Dark)
	respondData(w, r, http.StatusOK, themeResponse(h.theme.Preference(), systemDark))
}

// SetTheme stores a new preference.
func (h *Handler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req ThemeRequest
	if err := decodeJSONBody(r, &req, false); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}
	if !validateRequest(w, r, &req) {
		return
	}
	mode, err := theme.ParseMode(req.Mode)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}
	if err := h.theme.SetPreference(mode); err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternalError, "Failed to save theme", err)
		return
	}
	systemDark := r.URL.Query().Get("system") == string(theme.Dark)
	respondData(w, r, http.StatusOK, themeResponse(mode, systemDark))
}
