// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package catalog

import (
	"math/rand/v2"
	"slices"

	"github.com/tomtom215/analoguememory/internal/models"
)

// DefaultRandomCount is the number of items in a "discover" selection.
const DefaultRandomCount = 4

// Random returns min(count, len(items)) distinct items in random order.
// A nil rng uses the global source; a seeded rng gives a repeatable result.
func Random(items []models.CatalogItem, count int, rng *rand.Rand) []models.CatalogItem {
	if count <= 0 || len(items) == 0 {
		return []models.CatalogItem{}
	}

	shuffled := slices.Clone(items)
	swap := func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] }
	if rng != nil {
		rng.Shuffle(len(shuffled), swap)
	} else {
		rand.Shuffle(len(shuffled), swap)
	}
	return shuffled[:min(count, len(shuffled))]
}
