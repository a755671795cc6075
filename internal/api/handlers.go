// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package api

import (
	"context"
	"time"

	"github.com/tomtom215/analoguememory/internal/apiclient"
	"github.com/tomtom215/analoguememory/internal/catalog"
	"github.com/tomtom215/analoguememory/internal/collection"
	"github.com/tomtom215/analoguememory/internal/models"
	"github.com/tomtom215/analoguememory/internal/theme"
)

// Remote is the part of the backend client used by handlers. Both
// *apiclient.Client and *apiclient.CircuitBreakerClient satisfy it.
type Remote interface {
	Collection(ctx context.Context) ([]apiclient.CollectionItem, error)
	AddToCollection(ctx context.Context, itemID, notes string) error
	RemoveFromCollection(ctx context.Context, itemID string) error
	UpdateNotes(ctx context.Context, itemID, notes string) error
	Health(ctx context.Context) (*models.HealthStatus, error)
}

// Sessions is the signed-in user state. *auth.Manager satisfies it.
type Sessions interface {
	Login(ctx context.Context, creds models.LoginCredentials, remember bool) (*models.User, error)
	Register(ctx context.Context, creds models.RegisterCredentials) (*models.User, error)
	Logout() error
	User() (models.User, bool)
	IsAuthenticated() bool
}

// Dependencies groups everything a Handler needs. Remote and Sessions may be
// nil, in which case remote mirroring and the auth endpoints are disabled.
type Dependencies struct {
	Catalog    *catalog.Store
	Collection *collection.Store
	Theme      *theme.Store
	Remote     Remote
	Sessions   Sessions
	// MirrorTimeout bounds best-effort remote collection updates.
	MirrorTimeout time.Duration
	Version       string
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_health.go: health probes
//   - handlers_catalog.go: categories, items, similar, random, share
//   - handlers_collection.go: personal collection
//   - handlers_theme.go: theme preference
//   - handlers_auth.go: login, register, logout, me
type Handler struct {
	catalog       *catalog.Store
	collection    *collection.Store
	theme         *theme.Store
	remote        Remote
	sessions      Sessions
	mirrorTimeout time.Duration
	version       string
	startTime     time.Time
}

// NewHandler creates a Handler.
func NewHandler(deps Dependencies) *Handler {
	if deps.MirrorTimeout <= 0 {
		deps.MirrorTimeout = 5 * time.Second
	}
	if deps.Version == "" {
		deps.Version = "dev"
	}
	return &Handler{
		catalog:       deps.Catalog,
		collection:    deps.Collection,
		theme:         deps.Theme,
		remote:        deps.Remote,
		sessions:      deps.Sessions,
		mirrorTimeout: deps.MirrorTimeout,
		version:       deps.Version,
		startTime:     time.Now(),
	}
}

// loggedIn reports whether remote calls can carry a user token.
func (h *Handler) loggedIn() bool {
	return h.sessions != nil && h.sessions.IsAuthenticated()
}
