// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

/*
Package catalog holds the in-memory catalog snapshot and the pure functions
that derive views from it.

# Components

  - Store: the current snapshot of items and categories, swapped atomically
  - Filter: category plus free-text filtering, order preserving
  - Similar: related items by shared category then year proximity
  - Random: a random selection of distinct items
  - Loader: fills a Store from a remote Source, with a built-in mock data
    set as fallback

Filter, Similar and Random never mutate their input slices and are safe to
call concurrently.

# Usage

	store := catalog.NewStore()
	loader := catalog.NewLoader(client, store, catalog.LoaderConfig{MockFallback: true})
	if err := loader.Load(ctx); err != nil {
		return err
	}

	visible := catalog.Filter(store.Items(), store.Categories(), "movies", "199")
	related := catalog.Similar(focal, store.Items(), catalog.DefaultSimilarLimit)
*/
package catalog
