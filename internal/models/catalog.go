// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package models

// AllCategoryID is the sentinel category id meaning "no category restriction".
// It is injected client-side and never appears in the remote category set.
const AllCategoryID = "all"

// AllCategoryName is the display name of the synthetic "all" category.
const AllCategoryName = "All Items"

// CatalogItem is a single nostalgia entry (movie, toy, album, ...) as consumed
// by filtering, ranking and collection logic.
//
// ID is stable and unique within a catalog snapshot. Category is free text;
// filters compare it case-insensitively, the similarity ranker compares it exactly.
type CatalogItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
	Year        int    `json:"year"`
	Description string `json:"description,omitempty"`
}

// Category is an entry of the category lookup table.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// AllCategory returns the synthetic "all" category.
func AllCategory() Category {
	return Category{ID: AllCategoryID, Name: AllCategoryName}
}
