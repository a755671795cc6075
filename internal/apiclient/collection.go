// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tomtom215/analoguememory/internal/models"
)

// CollectionItem is an entry of the user's server-side collection.
type CollectionItem struct {
	models.CatalogItem
	AddedAt string `json:"addedAt"`
	Notes   string `json:"notes,omitempty"`
}

type addRequest struct {
	ItemID string `json:"itemId"`
	Notes  string `json:"notes,omitempty"`
}

type notesRequest struct {
	Notes string `json:"notes"`
}

// Collection fetches the authenticated user's collection.
func (c *Client) Collection(ctx context.Context) ([]CollectionItem, error) {
	env, err := call[models.CollectionPayload](ctx, c, http.MethodGet, "/collection", nil)
	if err != nil {
		return nil, fmt.Errorf("get collection: %w", err)
	}

	out := make([]CollectionItem, 0, len(env.Data.Items))
	for i := range env.Data.Items {
		entry := &env.Data.Items[i]
		out = append(out, CollectionItem{
			CatalogItem: models.ToCatalogItem(&entry.MemoryItem, c.assets),
			AddedAt:     entry.AddedAt,
			Notes:       entry.Notes,
		})
	}
	return out, nil
}

// AddToCollection adds an item to the remote collection.
func (c *Client) AddToCollection(ctx context.Context, itemID, notes string) error {
	defer c.invalidate("/collection")
	if _, err := call[models.SuccessPayload](ctx, c, http.MethodPost, "/collection/add", addRequest{ItemID: itemID, Notes: notes}); err != nil {
		return fmt.Errorf("add %s to collection: %w", itemID, err)
	}
	return nil
}

// RemoveFromCollection removes an item from the remote collection.
func (c *Client) RemoveFromCollection(ctx context.Context, itemID string) error {
	defer c.invalidate("/collection")
	if _, err := call[models.SuccessPayload](ctx, c, http.MethodDelete, "/collection/remove/"+url.PathEscape(itemID), nil); err != nil {
		return fmt.Errorf("remove %s from collection: %w", itemID, err)
	}
	return nil
}

// UpdateNotes replaces the notes of a collection item.
func (c *Client) UpdateNotes(ctx context.Context, itemID, notes string) error {
	defer c.invalidate("/collection")
	if _, err := call[models.SuccessPayload](ctx, c, http.MethodPut, "/collection/notes/"+url.PathEscape(itemID), notesRequest{Notes: notes}); err != nil {
		return fmt.Errorf("update notes for %s: %w", itemID, err)
	}
	return nil
}
