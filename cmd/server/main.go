// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/analoguememory/internal/api"
	"github.com/tomtom215/analoguememory/internal/apiclient"
	"github.com/tomtom215/analoguememory/internal/auth"
	"github.com/tomtom215/analoguememory/internal/catalog"
	"github.com/tomtom215/analoguememory/internal/collection"
	"github.com/tomtom215/analoguememory/internal/config"
	"github.com/tomtom215/analoguememory/internal/kvstore"
	"github.com/tomtom215/analoguememory/internal/logging"
	"github.com/tomtom215/analoguememory/internal/supervisor"
	"github.com/tomtom215/analoguememory/internal/supervisor/services"
	"github.com/tomtom215/analoguememory/internal/theme"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// backend is what the gateway needs from the API client. Both the plain and
// the circuit breaker client satisfy it.
type backend interface {
	api.Remote
	auth.Remote
	catalog.Source
}

// newTree is replaced in tests to simulate late startup failures.
var newTree = supervisor.NewSupervisorTree

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Gateway failed")
	}
}

// run starts the gateway and blocks until shutdown. Errors are returned
// rather than logged fatally so that storage is always closed.
func run() error {
	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Caller:  cfg.Logging.Caller,
		Output:  os.Stderr,
		Service: "analoguememory",
		Version: version,
	})

	logging.Info().
		Str("api_base_url", cfg.API.BaseURL).
		Str("storage", cfg.Storage.Path).
		Bool("storage_in_memory", cfg.Storage.InMemory).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Analogue Memory gateway")

	db, err := kvstore.OpenBadger(cfg.Storage.Path, cfg.Storage.InMemory)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing storage")
		}
	}()

	client := apiclient.New(apiclient.Config{
		BaseURL:   cfg.API.BaseURL,
		AssetURL:  cfg.API.AssetURL,
		Timeout:   cfg.API.Timeout,
		RateLimit: cfg.API.RateLimit,
		RateBurst: cfg.API.RateBurst,
		CacheTTL:  cfg.API.CacheTTL,
		PageSize:  cfg.API.PageSize,
	}, nil)

	var remote backend = client
	if cfg.API.Breaker.Enabled {
		remote = apiclient.NewCircuitBreakerClient(client, apiclient.BreakerConfig{
			MaxRequests:  cfg.API.Breaker.MaxRequests,
			Interval:     cfg.API.Breaker.Interval,
			Timeout:      cfg.API.Breaker.Timeout,
			MinRequests:  cfg.API.Breaker.MinRequests,
			FailureRatio: cfg.API.Breaker.FailureRatio,
		})
		logging.Info().Msg("Circuit breaker enabled for the memory API")
	}

	// Remember-me state survives restarts, session state does not.
	sessions := auth.NewManager(remote, db, kvstore.NewMemoryStore())
	client.SetTokenSource(sessions)
	if user, ok := sessions.User(); ok && sessions.IsAuthenticated() {
		logging.Info().Str("user_id", user.ID).Msg("Restored remembered session")
	}

	catalogStore := catalog.NewStore()
	loader := catalog.NewLoader(remote, catalogStore, catalog.LoaderConfig{
		MockFallback: cfg.Catalog.MockFallback,
	})

	coll := collection.New(db, collection.Config{
		Key:       cfg.Collection.Key,
		Highlight: cfg.Collection.Highlight,
	})
	defer coll.Close()

	handler := api.NewHandler(api.Dependencies{
		Catalog:       catalogStore,
		Collection:    coll,
		Theme:         theme.NewStore(db),
		Remote:        remote,
		Sessions:      sessions,
		MirrorTimeout: cfg.API.Timeout,
		Version:       version,
	})
	mw := api.NewChiMiddlewareFromSecurity(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Inbound rate limiting is DISABLED")
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           api.NewRouter(handler, mw).SetupChi(),
		ReadHeaderTimeout: cfg.Server.Timeout,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout + cfg.API.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	tree, err := newTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}
	tree.AddCatalogService(services.NewCatalogRefreshService(loader, cfg.Catalog.RefreshInterval, cfg.Catalog.LoadTimeout))
	tree.AddAPIService(services.NewGatewayService(server, server.Addr, tree.ShutdownTimeout()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := tree.ServeBackground(ctx)

	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, stopping services")
		<-errCh
	case serveErr = <-errCh:
		if serveErr != nil {
			serveErr = fmt.Errorf("supervisor tree stopped: %w", serveErr)
		}
	}
	if report, err := tree.UnstoppedServiceReport(); err == nil && len(report) > 0 {
		logging.Warn().Int("count", len(report)).Msg("Some services did not stop in time")
	}
	logging.Info().Msg("Analogue Memory gateway stopped")
	return serveErr
}

var (
	_ backend               = (*apiclient.CircuitBreakerClient)(nil)
	_ api.Sessions          = (*auth.Manager)(nil)
	_ apiclient.TokenSource = (*auth.Manager)(nil)
)
