// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package api

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/analoguememory/internal/catalog"
	"github.com/tomtom215/analoguememory/internal/models"
	"github.com/tomtom215/analoguememory/internal/share"
)

// ItemView is a catalog item annotated with collection state.
type ItemView struct {
	models.CatalogItem
	InCollection  bool `json:"in_collection"`
	RecentlyAdded bool `json:"recently_added"`
}

// ItemsResponse is the payload of item list endpoints.
type ItemsResponse struct {
	Items    []ItemView `json:"items"`
	Total    int        `json:"total"`
	Category string     `json:"category,omitempty"`
	Query    string     `json:"query,omitempty"`
}

// ShareResponse is the payload of GET /items/{id}/share.
type ShareResponse struct {
	Title string            `json:"title"`
	Text  string            `json:"text"`
	URL   string            `json:"url"`
	Links map[string]string `json:"links"`
}

func (h *Handler) view(item models.CatalogItem) ItemView {
	return ItemView{
		CatalogItem:   item,
		InCollection:  h.collection.IsInCollection(item.ID),
		RecentlyAdded: h.collection.IsRecentlyAdded(item.ID),
	}
}

func (h *Handler) views(items []models.CatalogItem) []ItemView {
	out := make([]ItemView, len(items))
	for i := range items {
		out[i] = h.view(items[i])
	}
	return out
}

// lookupItem resolves {id} or writes the 404 itself.
func (h *Handler) lookupItem(w http.ResponseWriter, r *http.Request) (models.CatalogItem, bool) {
	id := chi.URLParam(r, "id")
	item, ok := h.catalog.Item(id)
	if !ok {
		respondError(w, r, http.StatusNotFound, ErrCodeItemNotFound, "Item not found", nil)
	}
	return item, ok
}

// Categories lists categories with the synthetic "all" entry first.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	if !h.requireCatalog(w, r) {
		return
	}
	respondData(w, r, http.StatusOK, h.catalog.Categories())
}

// Items filters the catalog by category and free-text query.
func (h *Handler) Items(w http.ResponseWriter, r *http.Request) {
	if !h.requireCatalog(w, r) {
		return
	}
	req := ItemsRequest{
		Category: r.URL.Query().Get("category"),
		Query:    r.URL.Query().Get("q"),
	}
	if !validateRequest(w, r, &req) {
		return
	}

	active := req.Category
	if active == "" {
		active = models.AllCategoryID
	}
	items := catalog.Filter(h.catalog.Items(), h.catalog.Categories(), active, req.Query)
	respondData(w, r, http.StatusOK, ItemsResponse{
		Items:    h.views(items),
		Total:    len(items),
		Category: active,
		Query:    req.Query,
	})
}

// RandomItems picks up to count distinct items.
func (h *Handler) RandomItems(w http.ResponseWriter, r *http.Request) {
	if !h.requireCatalog(w, r) {
		return
	}
	req := RandomRequest{Count: getIntParam(r, "count", catalog.DefaultRandomCount)}
	if !validateRequest(w, r, &req) {
		return
	}
	items := catalog.Random(h.catalog.Items(), req.Count, nil)
	respondData(w, r, http.StatusOK, ItemsResponse{Items: h.views(items), Total: len(items)})
}

// Item returns a single item.
func (h *Handler) Item(w http.ResponseWriter, r *http.Request) {
	if !h.requireCatalog(w, r) {
		return
	}
	item, ok := h.lookupItem(w, r)
	if !ok {
		return
	}
	respondData(w, r, http.StatusOK, h.view(item))
}

// SimilarItems ranks items similar to {id}.
func (h *Handler) SimilarItems(w http.ResponseWriter, r *http.Request) {
	if !h.requireCatalog(w, r) {
		return
	}
	req := SimilarRequest{Limit: getIntParam(r, "limit", catalog.DefaultSimilarLimit)}
	if !validateRequest(w, r, &req) {
		return
	}
	item, ok := h.lookupItem(w, r)
	if !ok {
		return
	}
	items := catalog.Similar(item, h.catalog.Items(), req.Limit)
	respondData(w, r, http.StatusOK, ItemsResponse{Items: h.views(items), Total: len(items)})
}

// ShareItem builds share links for {id}. The page URL defaults to the item
// page on the requesting host.
func (h *Handler) ShareItem(w http.ResponseWriter, r *http.Request) {
	if !h.requireCatalog(w, r) {
		return
	}
	req := ShareRequest{
		URL:      r.URL.Query().Get("url"),
		Platform: strings.ToLower(r.URL.Query().Get("platform")),
	}
	if !validateRequest(w, r, &req) {
		return
	}
	item, ok := h.lookupItem(w, r)
	if !ok {
		return
	}

	pageURL := req.URL
	if pageURL == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		pageURL = (&url.URL{Scheme: scheme, Host: r.Host, Path: "/items/" + item.ID}).String()
	}

	resp := ShareResponse{
		Title: share.Title(item),
		Text:  share.Text(item),
		URL:   pageURL,
		Links: make(map[string]string),
	}
	if req.Platform != "" {
		link, err := share.Link(share.Platform(req.Platform), item, pageURL)
		if err != nil {
			respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
			return
		}
		resp.Links[req.Platform] = link
	} else {
		for p, link := range share.Links(item, pageURL) {
			resp.Links[string(p)] = link
		}
	}
	respondData(w, r, http.StatusOK, resp)
}
