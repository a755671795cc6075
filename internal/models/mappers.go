// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package models

// AssetResolver turns a relative asset path into an absolute URL.
type AssetResolver interface {
	Resolve(path string) string
}

// ToCatalogItem maps a backend item to the catalog model, resolving its image URL.
// A nil resolver leaves the image URL untouched.
func ToCatalogItem(item *MemoryItem, assets AssetResolver) CatalogItem {
	imageURL := item.ImageURL
	if assets != nil {
		imageURL = assets.Resolve(imageURL)
	}
	return CatalogItem{
		ID:          item.ID,
		Title:       item.Name,
		ImageURL:    imageURL,
		Category:    item.Category,
		Year:        item.Year,
		Description: item.Description,
	}
}

// ToCatalogItems maps a slice of backend items, preserving order.
func ToCatalogItems(items []MemoryItem, assets AssetResolver) []CatalogItem {
	out := make([]CatalogItem, 0, len(items))
	for i := range items {
		out = append(out, ToCatalogItem(&items[i], assets))
	}
	return out
}

// ToCategory maps a backend category to the lookup model.
func ToCategory(c *APICategory) Category {
	return Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}

// ToCategories maps a slice of backend categories, preserving order.
func ToCategories(cats []APICategory) []Category {
	out := make([]Category, 0, len(cats))
	for i := range cats {
		out = append(out, ToCategory(&cats[i]))
	}
	return out
}

// FromCatalogItem maps a catalog item back to the backend shape for write requests.
func FromCatalogItem(item *CatalogItem) MemoryItem {
	return MemoryItem{
		ID:          item.ID,
		Name:        item.Title,
		Description: item.Description,
		Category:    item.Category,
		Year:        item.Year,
		ImageURL:    item.ImageURL,
	}
}
