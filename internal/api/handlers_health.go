// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/analoguememory/internal/logging"
)

// HealthResponse is the payload of GET /health.
type HealthResponse struct {
	Status         string    `json:"status"`
	Version        string    `json:"version"`
	Uptime         float64   `json:"uptime_seconds"`
	CatalogLoaded  bool      `json:"catalog_loaded"`
	CatalogSource  string    `json:"catalog_source,omitempty"`
	CatalogItems   int       `json:"catalog_items"`
	CatalogLoadAt  time.Time `json:"catalog_loaded_at,omitempty"`
	CollectionSize int       `json:"collection_size"`
	Remote         string    `json:"remote"`
	RemoteMessage  string    `json:"remote_message,omitempty"`
}

// Health reports catalog state and, when configured, the backend's own
// health. A failing backend degrades the status but still answers 200 since
// the gateway keeps serving from its snapshot.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	loadedAt, source := h.catalog.LoadedAt()
	resp := HealthResponse{
		Status:         "healthy",
		Version:        h.version,
		Uptime:         time.Since(h.startTime).Seconds(),
		CatalogLoaded:  h.catalog.Loaded(),
		CatalogSource:  source,
		CatalogItems:   h.catalog.Len(),
		CatalogLoadAt:  loadedAt,
		CollectionSize: h.collection.Len(),
		Remote:         "disabled",
	}

	if h.remote != nil {
		ctx, cancel := context.WithTimeout(r.Context(), h.mirrorTimeout)
		defer cancel()
		status, err := h.remote.Health(ctx)
		switch {
		case err != nil:
			logging.Ctx(r.Context()).Warn().Err(err).Msg("Remote health check failed")
			resp.Remote = "unreachable"
			resp.Status = "degraded"
		default:
			resp.Remote = status.Status
			resp.RemoteMessage = status.Message
		}
	}
	if !resp.CatalogLoaded {
		resp.Status = "degraded"
	}

	respondData(w, r, http.StatusOK, resp)
}

// HealthLive is the liveness probe.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondData(w, r, http.StatusOK, map[string]string{"status": "alive"})
}

// HealthReady is the readiness probe: ready once a catalog snapshot exists.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if !h.catalog.Loaded() {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Catalog not loaded", nil)
		return
	}
	respondData(w, r, http.StatusOK, map[string]string{"status": "ready"})
}
