// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

/*
Package api exposes the catalog, collection, share, theme and auth features
over HTTP using the Chi router.

Every response uses the models.APIResponse envelope:

	{"status": "success", "data": {...}, "metadata": {"timestamp": "..."}}
	{"status": "error", "error": {"code": "CATALOG_LOADING", "message": "..."}, "metadata": {...}}

Routes:

	GET    /api/v1/health, /api/v1/health/live, /api/v1/health/ready
	GET    /api/v1/categories
	GET    /api/v1/items?category=&q=
	GET    /api/v1/items/random?count=
	GET    /api/v1/items/{id}
	GET    /api/v1/items/{id}/similar?limit=
	GET    /api/v1/items/{id}/share?url=&platform=
	GET    /api/v1/collection?remote=
	POST   /api/v1/collection/{id}
	DELETE /api/v1/collection/{id}
	PUT    /api/v1/collection/{id}/notes
	GET    /api/v1/theme?system=
	PUT    /api/v1/theme
	POST   /api/v1/auth/login, /api/v1/auth/register, /api/v1/auth/logout
	GET    /api/v1/auth/me
	GET    /metrics

Item lists answer 503 CATALOG_LOADING until the first catalog load has
finished, so clients can tell "still loading" from "nothing matched".

Errors from the remote backend are translated by respondUpstreamError:
4xx rejections keep their status, 5xx and malformed responses become 502
EXTERNAL_SERVICE_FAILED, and an open circuit breaker becomes 503.
*/
package api
