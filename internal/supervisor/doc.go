// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

/*
Package supervisor runs the gateway's long-lived services under a suture v4
tree.

	RootSupervisor ("analoguememory")
	├── CatalogSupervisor ("catalog-layer")
	│   └── CatalogRefreshService
	└── APISupervisor ("api-layer")
	    └── GatewayService

A failing catalog refresh restarts with backoff without touching the HTTP
layer, which keeps serving the last snapshot. Supervisor events are logged
through sutureslog, bridged to zerolog by logging.NewSlogLogger.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddCatalogService(services.NewCatalogRefreshService(loader, 15*time.Minute, 30*time.Second))
	tree.AddAPIService(services.NewGatewayService(server, ":8080", 10*time.Second))
	err = tree.Serve(ctx)
*/
package supervisor
