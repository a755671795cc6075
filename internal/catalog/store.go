// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package catalog

import (
	"slices"
	"sync"
	"time"

	"github.com/tomtom215/analoguememory/internal/models"
)

// Store holds the current catalog snapshot.
//
// A Store starts out unloaded. Callers use Loaded to tell "still loading"
// apart from a catalog that is genuinely empty.
type Store struct {
	mu         sync.RWMutex
	items      []models.CatalogItem
	categories []models.Category
	byID       map[string]int
	loaded     bool
	loadedAt   time.Time
	source     string
}

// NewStore creates an empty, unloaded Store.
func NewStore() *Store {
	return &Store{byID: make(map[string]int)}
}

// Replace swaps in a new snapshot. source describes where it came from
// ("remote" or "mock"). The slices are copied.
//
// Items with a duplicate id after the first occurrence are dropped so that
// ids stay unique within a snapshot.
func (s *Store) Replace(items []models.CatalogItem, categories []models.Category, source string) {
	kept := make([]models.CatalogItem, 0, len(items))
	byID := make(map[string]int, len(items))
	for i := range items {
		if _, dup := byID[items[i].ID]; dup {
			continue
		}
		byID[items[i].ID] = len(kept)
		kept = append(kept, items[i])
	}

	cats := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		if c.ID == models.AllCategoryID {
			continue
		}
		cats = append(cats, c)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = kept
	s.categories = cats
	s.byID = byID
	s.loaded = true
	s.loadedAt = time.Now()
	s.source = source
}

// Loaded reports whether a snapshot has been stored.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// LoadedAt returns when the current snapshot was stored and its source.
func (s *Store) LoadedAt() (time.Time, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt, s.source
}

// Items returns a copy of all items in catalog order.
func (s *Store) Items() []models.CatalogItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

// Len returns the number of items.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Categories returns the synthetic "all" category followed by the remote
// categories in their original order.
func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Category, 0, len(s.categories)+1)
	out = append(out, models.AllCategory())
	return append(out, s.categories...)
}

// Item looks up an item by id.
func (s *Store) Item(id string) (models.CatalogItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.byID[id]
	if !ok {
		return models.CatalogItem{}, false
	}
	return s.items[idx], true
}

// Category looks up a category by id, including "all".
func (s *Store) Category(id string) (models.Category, bool) {
	if id == models.AllCategoryID {
		return models.AllCategory(), true
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}

// ItemsInCategory returns the items of category id in catalog order.
// An unknown id yields an empty result.
func (s *Store) ItemsInCategory(id string) []models.CatalogItem {
	return Filter(s.Items(), s.Categories(), id, "")
}
