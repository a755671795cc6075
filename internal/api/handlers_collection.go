// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/analoguememory/internal/logging"
)

// CollectionResponse is the payload of GET /collection.
type CollectionResponse struct {
	Items         []ItemView `json:"items"`
	IDs           []string   `json:"ids"`
	Total         int        `json:"total"`
	RecentlyAdded *string    `json:"recently_added"`
	// Remote is set when ?remote=true was requested by a signed-in user.
	Remote interface{} `json:"remote,omitempty"`
}

// CollectionChangeResponse is the payload of collection mutations.
type CollectionChangeResponse struct {
	ID           string `json:"id"`
	InCollection bool   `json:"in_collection"`
	Total        int    `json:"total"`
	Synced       bool   `json:"synced"`
}

// Collection returns the local collection resolved against the catalog.
// With ?remote=true and a signed-in user the backend collection is
// included as well.
func (h *Handler) Collection(w http.ResponseWriter, r *http.Request) {
	items := h.collection.Items(h.catalog.Items())
	resp := CollectionResponse{
		Items: h.views(items),
		IDs:   h.collection.IDs(),
		Total: h.collection.Len(),
	}
	if id, ok := h.collection.RecentlyAdded(); ok {
		resp.RecentlyAdded = &id
	}

	if getBoolParam(r, "remote") {
		if h.remote == nil || !h.loggedIn() {
			respondError(w, r, http.StatusUnauthorized, ErrCodeUnauthorized, "Sign in to view the remote collection", nil)
			return
		}
		remote, err := h.remote.Collection(r.Context())
		if err != nil {
			respondUpstreamError(w, r, err)
			return
		}
		resp.Remote = remote
	}
	respondData(w, r, http.StatusOK, resp)
}

// knownItem rejects ids that are not in a loaded catalog. Before the first
// load every id is accepted so a restored collection stays editable.
func (h *Handler) knownItem(w http.ResponseWriter, r *http.Request, id string) bool {
	if !h.catalog.Loaded() {
		return true
	}
	if _, ok := h.catalog.Item(id); ok {
		return true
	}
	respondError(w, r, http.StatusNotFound, ErrCodeItemNotFound, "Item not found", nil)
	return false
}

// AddToCollection adds {id} and highlights it.
func (h *Handler) AddToCollection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req AddToCollectionRequest
	if err := decodeJSONBody(r, &req, true); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}
	if !validateRequest(w, r, &req) || !h.knownItem(w, r, id) {
		return
	}

	h.collection.Add(id)

	synced := h.mirror(r.Context(), "add", func(ctx context.Context) error {
		return h.remote.AddToCollection(ctx, id, req.Notes)
	})
	respondData(w, r, http.StatusOK, CollectionChangeResponse{
		ID:           id,
		InCollection: true,
		Total:        h.collection.Len(),
		Synced:       synced,
	})
}

// RemoveFromCollection removes {id}. Removing an absent id succeeds.
func (h *Handler) RemoveFromCollection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.collection.Remove(id)

	synced := h.mirror(r.Context(), "remove", func(ctx context.Context) error {
		return h.remote.RemoveFromCollection(ctx, id)
	})
	respondData(w, r, http.StatusOK, CollectionChangeResponse{
		ID:     id,
		Total:  h.collection.Len(),
		Synced: synced,
	})
}

// UpdateNotes stores notes for {id} on the backend. Notes are not kept
// locally, so this requires a signed-in user.
func (h *Handler) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	if h.remote == nil || !h.loggedIn() {
		respondError(w, r, http.StatusUnauthorized, ErrCodeUnauthorized, "Sign in to edit notes", nil)
		return
	}
	id := chi.URLParam(r, "id")
	var req NotesRequest
	if err := decodeJSONBody(r, &req, false); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}
	if !validateRequest(w, r, &req) {
		return
	}
	if err := h.remote.UpdateNotes(r.Context(), id, req.Notes); err != nil {
		respondUpstreamError(w, r, err)
		return
	}
	respondData(w, r, http.StatusOK, map[string]string{"id": id, "notes": req.Notes})
}

// mirror replays a local collection change on the backend when a user is
// signed in. Failures are logged and reported as synced=false; the local
// change stands either way.
func (h *Handler) mirror(ctx context.Context, op string, fn func(context.Context) error) bool {
	if h.remote == nil || !h.loggedIn() {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, h.mirrorTimeout)
	defer cancel()
	if err := fn(ctx); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("op", op).Msg("Remote collection update failed")
		return false
	}
	return true
}
