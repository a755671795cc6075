// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

/*
Package services adapts gateway components to suture's Serve pattern.

  - GatewayService binds the listen address and serves the REST gateway
    on it, draining in-flight requests on shutdown.
  - CatalogRefreshService loads the catalog at startup and again on every
    tick of its refresh interval.

Each service returns nil or ctx.Err() on cancellation and a wrapped error
when it should be restarted.
*/
package services
