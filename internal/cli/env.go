// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/analoguememory/internal/apiclient"
	"github.com/tomtom215/analoguememory/internal/auth"
	"github.com/tomtom215/analoguememory/internal/catalog"
	"github.com/tomtom215/analoguememory/internal/collection"
	"github.com/tomtom215/analoguememory/internal/config"
	"github.com/tomtom215/analoguememory/internal/kvstore"
	"github.com/tomtom215/analoguememory/internal/logging"
	"github.com/tomtom215/analoguememory/internal/theme"
)

// backend is the part of the API client memoryctl uses.
type backend interface {
	catalog.Source
	auth.Remote
	AddToCollection(ctx context.Context, itemID, notes string) error
	RemoveFromCollection(ctx context.Context, itemID string) error
}

// cmdEnv holds the resources a command works with.
type cmdEnv struct {
	remote   backend
	catalog  *catalog.Store
	loader   *catalog.Loader
	coll     *collection.Store
	theme    *theme.Store
	sessions *auth.Manager
	timeout  time.Duration
	closers  []func() error
}

// Close releases resources held by cmdEnv.
func (e *cmdEnv) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		errs = append(errs, e.closers[i]())
	}
	return errors.Join(errs...)
}

// loadCatalog fills the catalog store once per command.
func (e *cmdEnv) loadCatalog(ctx context.Context) error {
	if e.catalog.Loaded() {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	if err := e.loader.Load(ctx); err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	return nil
}

// signedIn reports whether remote calls carry a user token.
func (e *cmdEnv) signedIn() bool {
	return e.remote != nil && e.sessions != nil && e.sessions.IsAuthenticated()
}

// openEnv builds the environment for a command. Tests replace it.
var openEnv = openDefaultEnv

func openDefaultEnv(cmd *cobra.Command, opts *options) (*cmdEnv, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, err
	}
	logging.Init(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  "console",
		Output:  cmd.ErrOrStderr(),
		Service: "memoryctl",
	})

	path := cfg.Storage.Path
	if opts.dataDir != "" {
		path = opts.dataDir
	}
	db, err := kvstore.OpenBadger(path, cfg.Storage.InMemory)
	if err != nil {
		return nil, fmt.Errorf("open local state: %w", err)
	}

	env := &cmdEnv{
		catalog: catalog.NewStore(),
		theme:   theme.NewStore(db),
		timeout: cfg.Catalog.LoadTimeout,
		closers: []func() error{db.Close},
	}

	var source catalog.Source
	if !opts.offline {
		client := apiclient.New(apiclient.Config{
			BaseURL:   cfg.API.BaseURL,
			AssetURL:  cfg.API.AssetURL,
			Timeout:   cfg.API.Timeout,
			RateLimit: cfg.API.RateLimit,
			RateBurst: cfg.API.RateBurst,
			PageSize:  cfg.API.PageSize,
		}, nil)
		env.remote = client
		env.sessions = auth.NewManager(client, db, kvstore.NewMemoryStore())
		client.SetTokenSource(env.sessions)
		source = client
	}
	env.loader = catalog.NewLoader(source, env.catalog, catalog.LoaderConfig{MockFallback: true})

	env.coll = collection.New(db, collection.Config{
		Key:       cfg.Collection.Key,
		Highlight: cfg.Collection.Highlight,
	})
	env.closers = append(env.closers, func() error { env.coll.Close(); return nil })
	return env, nil
}

// withEnv opens the environment, runs fn and closes it.
func withEnv(cmd *cobra.Command, opts *options, fn func(*cmdEnv) error) error {
	if err := validateOutput(opts.output); err != nil {
		return err
	}
	env, err := openEnv(cmd, opts)
	if err != nil {
		return err
	}
	runErr := fn(env)
	if err := env.Close(); err != nil && runErr == nil {
		return err
	}
	return runErr
}
