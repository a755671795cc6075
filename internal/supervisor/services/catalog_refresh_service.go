// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/analoguememory/internal/logging"
)

// CatalogLoader is satisfied by *catalog.Loader.
type CatalogLoader interface {
	Load(ctx context.Context) error
}

// CatalogRefreshService loads the catalog once on start and then every
// interval. A failed refresh is logged and retried on the next tick; the
// store keeps its previous snapshot. An interval of zero loads only once.
type CatalogRefreshService struct {
	loader      CatalogLoader
	interval    time.Duration
	loadTimeout time.Duration
	logger      zerolog.Logger
}

// NewCatalogRefreshService creates the service. A non-positive loadTimeout
// selects 30s.
func NewCatalogRefreshService(loader CatalogLoader, interval, loadTimeout time.Duration) *CatalogRefreshService {
	if loadTimeout <= 0 {
		loadTimeout = 30 * time.Second
	}
	return &CatalogRefreshService{
		loader:      loader,
		interval:    interval,
		loadTimeout: loadTimeout,
		logger:      logging.WithComponent("catalog-refresh"),
	}
}

// Serve implements suture.Service.
func (s *CatalogRefreshService) Serve(ctx context.Context) error {
	s.load(ctx)

	if s.interval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.load(ctx)
		}
	}
}

func (s *CatalogRefreshService) load(ctx context.Context) {
	loadCtx, cancel := context.WithTimeout(ctx, s.loadTimeout)
	defer cancel()

	if err := s.loader.Load(loadCtx); err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Warn().Err(err).Dur("retry_in", s.interval).Msg("Catalog refresh failed")
	}
}

// String implements fmt.Stringer for supervisor logs.
func (s *CatalogRefreshService) String() string {
	return "catalog-refresh"
}
