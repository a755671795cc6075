// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/analoguememory/internal/logging"
	"github.com/tomtom215/analoguememory/internal/metrics"
	"github.com/tomtom215/analoguememory/internal/models"
)

// Source supplies a full catalog snapshot. The API client implements it.
type Source interface {
	AllItems(ctx context.Context) ([]models.CatalogItem, error)
	Categories(ctx context.Context) ([]models.Category, error)
}

// LoaderConfig controls Loader behavior.
type LoaderConfig struct {
	// MockFallback loads the built-in data set when the source fails.
	MockFallback bool
}

// Loader fills a Store from a Source.
type Loader struct {
	source Source
	store  *Store
	cfg    LoaderConfig
	logger zerolog.Logger
}

// NewLoader creates a Loader. source may be nil, in which case only the
// mock data set can be loaded.
func NewLoader(source Source, store *Store, cfg LoaderConfig) *Loader {
	return &Loader{
		source: source,
		store:  store,
		cfg:    cfg,
		logger: logging.WithComponent("catalog"),
	}
}

// Load fetches a snapshot and stores it.
//
// On a source failure with MockFallback enabled the mock set is stored and
// Load returns nil, unless the store already holds a remote snapshot. A
// remote snapshot is never downgraded to mock data; the previous snapshot
// stays and the error is returned.
func (l *Loader) Load(ctx context.Context) error {
	start := time.Now()

	items, categories, err := l.fetch(ctx)
	if err == nil {
		l.store.Replace(items, categories, "remote")
		metrics.RecordCatalogRefresh("remote", len(items), len(categories), time.Since(start), nil)
		l.logger.Info().
			Int("items", len(items)).
			Int("categories", len(categories)).
			Dur("duration", time.Since(start)).
			Msg("Catalog loaded")
		return nil
	}

	if _, source := l.store.LoadedAt(); !l.cfg.MockFallback || source == "remote" {
		metrics.RecordCatalogRefresh("remote", 0, 0, time.Since(start), err)
		return err
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	l.logger.Warn().Err(err).Msg("Catalog source unavailable, using built-in data set")
	items, categories = MockItems(), MockCategories()
	l.store.Replace(items, categories, "mock")
	metrics.RecordCatalogRefresh("mock", len(items), len(categories), time.Since(start), nil)
	return nil
}

func (l *Loader) fetch(ctx context.Context) ([]models.CatalogItem, []models.Category, error) {
	if l.source == nil {
		return nil, nil, errors.New("no catalog source configured")
	}
	items, err := l.source.AllItems(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch items: %w", err)
	}
	categories, err := l.source.Categories(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch categories: %w", err)
	}
	return items, categories, nil
}
