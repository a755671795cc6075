// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package api

import (
	"net/http"

	"github.com/tomtom215/analoguememory/internal/models"
)

// SessionResponse is the payload of auth endpoints. The token itself never
// leaves the gateway.
type SessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *models.User `json:"user,omitempty"`
}

func (h *Handler) authEnabled(w http.ResponseWriter, r *http.Request) bool {
	if h.sessions != nil {
		return true
	}
	respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Authentication is not configured", nil)
	return false
}

// Login signs in against the backend.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if !h.authEnabled(w, r) {
		return
	}
	var req LoginRequest
	if err := decodeJSONBody(r, &req, false); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}
	creds := models.LoginCredentials{Email: req.Email, Password: req.Password}
	user, err := h.sessions.Login(r.Context(), creds, req.RememberMe)
	if err != nil {
		respondUpstreamError(w, r, err)
		return
	}
	respondData(w, r, http.StatusOK, SessionResponse{Authenticated: true, User: user})
}

// Register creates an account and signs in for this session.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if !h.authEnabled(w, r) {
		return
	}
	var creds models.RegisterCredentials
	if err := decodeJSONBody(r, &creds, false); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}
	user, err := h.sessions.Register(r.Context(), creds)
	if err != nil {
		respondUpstreamError(w, r, err)
		return
	}
	respondData(w, r, http.StatusCreated, SessionResponse{Authenticated: true, User: user})
}

// Logout clears the stored session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if !h.authEnabled(w, r) {
		return
	}
	if err := h.sessions.Logout(); err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternalError, "Failed to clear session", err)
		return
	}
	respondData(w, r, http.StatusOK, SessionResponse{})
}

// Me returns the signed-in user.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	if !h.authEnabled(w, r) {
		return
	}
	user, ok := h.sessions.User()
	if !ok || !h.sessions.IsAuthenticated() {
		respondError(w, r, http.StatusUnauthorized, ErrCodeUnauthorized, "Not signed in", nil)
		return
	}
	respondData(w, r, http.StatusOK, SessionResponse{Authenticated: true, User: &user})
}
