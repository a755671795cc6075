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

// Categories fetches the remote category list. The synthetic "all" category
// is not part of it.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	env, err := call[models.CategoriesPayload](ctx, c, http.MethodGet, "/categories", nil)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return models.ToCategories(env.Data.Categories), nil
}

// Category fetches a single category.
func (c *Client) Category(ctx context.Context, id string) (models.Category, error) {
	env, err := call[models.CategoryPayload](ctx, c, http.MethodGet, "/categories/"+url.PathEscape(id), nil)
	if err != nil {
		return models.Category{}, fmt.Errorf("get category %s: %w", id, err)
	}
	return models.ToCategory(env.Data.Category), nil
}
