// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package api

// Request structs validated with go-playground/validator before handlers
// touch the catalog or the remote backend.

// ItemsRequest is the query of GET /items.
type ItemsRequest struct {
	Category string `json:"category" validate:"omitempty,max=100"`
	Query    string `json:"q" validate:"max=200"`
}

// SimilarRequest is the query of GET /items/{id}/similar.
type SimilarRequest struct {
	Limit int `json:"limit" validate:"min=1,max=50"`
}

// RandomRequest is the query of GET /items/random.
type RandomRequest struct {
	Count int `json:"count" validate:"min=1,max=50"`
}

// ShareRequest is the query of GET /items/{id}/share.
type ShareRequest struct {
	URL      string `json:"url" validate:"omitempty,url,max=2048"`
	Platform string `json:"platform" validate:"omitempty,oneof=facebook twitter email copy"`
}

// AddToCollectionRequest is the optional body of POST /collection/{id}.
type AddToCollectionRequest struct {
	Notes string `json:"notes" validate:"max=1000"`
}

// NotesRequest is the body of PUT /collection/{id}/notes.
type NotesRequest struct {
	Notes string `json:"notes" validate:"max=1000"`
}

// ThemeRequest is the body of PUT /theme.
type ThemeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=light dark system"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}
