// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package catalog

import (
	"slices"

	"github.com/tomtom215/analoguememory/internal/models"
)

// DefaultSimilarLimit is the number of related items shown for an item.
const DefaultSimilarLimit = 4

// Similar returns up to limit items related to focal.
//
// Items in exactly the same category as focal come first, ordered by year
// distance from focal. If that pool is too small the remaining slots are
// filled from other categories, ordered the same way. Ties keep catalog order,
// so the result is deterministic. focal itself is never included.
func Similar(focal models.CatalogItem, items []models.CatalogItem, limit int) []models.CatalogItem {
	if limit <= 0 {
		return []models.CatalogItem{}
	}

	var primary, secondary []models.CatalogItem
	for i := range items {
		switch {
		case items[i].ID == focal.ID:
		case items[i].Category == focal.Category:
			primary = append(primary, items[i])
		default:
			secondary = append(secondary, items[i])
		}
	}

	byDistance := func(a, b models.CatalogItem) int {
		return yearDistance(a, focal) - yearDistance(b, focal)
	}
	slices.SortStableFunc(primary, byDistance)

	out := make([]models.CatalogItem, 0, min(limit, len(primary)+len(secondary)))
	out = append(out, primary[:min(limit, len(primary))]...)
	if len(out) == limit {
		return out
	}

	slices.SortStableFunc(secondary, byDistance)
	return append(out, secondary[:min(limit-len(out), len(secondary))]...)
}

func yearDistance(item, focal models.CatalogItem) int {
	d := item.Year - focal.Year
	if d < 0 {
		return -d
	}
	return d
}
