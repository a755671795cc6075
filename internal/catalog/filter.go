// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package catalog

import (
	"strconv"
	"strings"

	"github.com/tomtom215/analoguememory/internal/models"
)

// Filter returns the items visible for activeCategory and query, in their
// original order.
//
// When activeCategory is not "all" it is resolved to a category name through
// categories and items are kept when their category equals that name,
// ignoring case. An id that does not resolve matches nothing.
//
// A non-empty query keeps items whose title, description, category or
// decimal year contains it, ignoring case. Both predicates must hold.
// The input slice is never modified; the result may be empty.
func Filter(items []models.CatalogItem, categories []models.Category, activeCategory, query string) []models.CatalogItem {
	out := make([]models.CatalogItem, 0, len(items))

	byCategory := activeCategory != "" && activeCategory != models.AllCategoryID
	var categoryName string
	if byCategory {
		name, ok := categoryNameFor(categories, activeCategory)
		if !ok {
			return out
		}
		categoryName = name
	}

	needle := strings.ToLower(query)
	for i := range items {
		item := &items[i]
		if byCategory && !strings.EqualFold(item.Category, categoryName) {
			continue
		}
		if needle != "" && !matchesQuery(item, needle) {
			continue
		}
		out = append(out, *item)
	}
	return out
}

func categoryNameFor(categories []models.Category, id string) (string, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c.Name, true
		}
	}
	return "", false
}

// matchesQuery expects needle to be lower-cased already.
func matchesQuery(item *models.CatalogItem, needle string) bool {
	return strings.Contains(strings.ToLower(item.Title), needle) ||
		strings.Contains(strings.ToLower(item.Description), needle) ||
		strings.Contains(strings.ToLower(item.Category), needle) ||
		strings.Contains(strconv.Itoa(item.Year), needle)
}
