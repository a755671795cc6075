// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package apiclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func checkNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func checkStringEqual(t *testing.T, name, got, want string) {
	t.Helper()
	if got != want {
		t.Errorf("%s: got %q, want %q", name, got, want)
	}
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// newTestClient starts a server handling everything under /api and returns
// a client pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc, tokens TokenSource, mutate ...func(*Config)) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := Config{
		BaseURL:  server.URL + "/api",
		AssetURL: "http://assets.example/assets",
		Timeout:  5 * time.Second,
		PageSize: 2,
	}
	for _, m := range mutate {
		m(&cfg)
	}
	c := New(cfg, tokens)
	t.Cleanup(c.Close)
	return c, server
}

const itemsPage1 = `{
  "status": "success",
  "results": 2,
  "pagination": {"page": 1, "limit": 2, "total": 3, "totalPages": 2},
  "data": {"items": [
    {"id": "1", "name": "The Lion King", "category": "Movies", "year": 1994, "imageUrl": "images/lion.jpg", "description": "Hakuna matata"},
    {"id": "2", "name": "Super Nintendo", "category": "Video Games", "year": 1990, "imageUrl": "https://cdn.example/snes.jpg"}
  ]}
}`

const itemsPage2 = `{
  "status": "success",
  "pagination": {"page": 2, "limit": 2, "total": 3, "totalPages": 2},
  "data": {"items": [
    {"id": "3", "name": "Friends", "category": "TV Shows", "year": 1994, "imageUrl": "/images/friends.jpg"}
  ]}
}`

const categoriesBody = `{
  "status": "success",
  "data": {"categories": [
    {"id": "movies", "name": "Movies", "description": "Classic films"},
    {"id": "music", "name": "Music", "description": "Hits and albums"}
  ]}
}`
