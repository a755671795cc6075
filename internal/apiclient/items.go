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

// maxPages bounds AllItems against a backend that never reports the end.
const maxPages = 1000

// ItemPage is one page of the item list.
type ItemPage struct {
	Items      []models.CatalogItem
	Pagination *models.Pagination
}

// ListItems fetches one page of items. page starts at 1.
func (c *Client) ListItems(ctx context.Context, page, limit int) (*ItemPage, error) {
	q := url.Values{}
	q.Set("page", fmt.Sprint(page))
	q.Set("limit", fmt.Sprint(limit))

	env, err := call[models.ItemsPayload](ctx, c, http.MethodGet, "/items?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("list items page %d: %w", page, err)
	}
	return &ItemPage{
		Items:      models.ToCatalogItems(env.Data.Items, c.assets),
		Pagination: env.Pagination,
	}, nil
}

// AllItems walks every page of /items. It stops when the backend reports
// no further pages, when a page is empty, or when no pagination is returned.
func (c *Client) AllItems(ctx context.Context) ([]models.CatalogItem, error) {
	var all []models.CatalogItem
	for page := 1; page <= maxPages; page++ {
		p, err := c.ListItems(ctx, page, c.pageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, p.Items...)
		if len(p.Items) == 0 || !p.Pagination.HasMore() {
			break
		}
	}
	if all == nil {
		all = []models.CatalogItem{}
	}
	return all, nil
}

// Item fetches a single item. A missing item yields an error matching
// ErrNotFound.
func (c *Client) Item(ctx context.Context, id string) (models.CatalogItem, error) {
	env, err := call[models.ItemPayload](ctx, c, http.MethodGet, "/items/"+url.PathEscape(id), nil)
	if err != nil {
		return models.CatalogItem{}, fmt.Errorf("get item %s: %w", id, err)
	}
	return models.ToCatalogItem(env.Data.Item, c.assets), nil
}

// SearchItems runs a server-side search.
func (c *Client) SearchItems(ctx context.Context, query string) ([]models.CatalogItem, error) {
	env, err := call[models.ItemsPayload](ctx, c, http.MethodGet, "/items/search?query="+url.QueryEscape(query), nil)
	if err != nil {
		return nil, fmt.Errorf("search items %q: %w", query, err)
	}
	return models.ToCatalogItems(env.Data.Items, c.assets), nil
}

// ItemsByCategory fetches the items of one category.
func (c *Client) ItemsByCategory(ctx context.Context, categoryID string) ([]models.CatalogItem, error) {
	env, err := call[models.ItemsPayload](ctx, c, http.MethodGet, "/items/category/"+url.PathEscape(categoryID), nil)
	if err != nil {
		return nil, fmt.Errorf("items in category %s: %w", categoryID, err)
	}
	return models.ToCatalogItems(env.Data.Items, c.assets), nil
}
