// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

/*
Package models defines data structures for the Analogue Memory application.

This package contains the in-memory catalog types consumed by the filtering,
ranking and collection logic, the wire types exchanged with the remote
Analogue Memory REST API, and the response envelope served by the gateway.

Key Components:

  - CatalogItem: Resolved catalog entry (title, image URL, category, year)
  - Category: Category lookup entry, plus the synthetic "all" category
  - Envelope: Generic {status, data, pagination} wrapper returned by the backend
  - APIResponse: Standardized gateway response wrapper

Model Categories:

1. Catalog Models:
  - CatalogItem, Category, AllCategory

2. Remote API Models:
  - MemoryItem, APICategory, CollectionEntry
  - User, AuthPayload, LoginCredentials, RegisterCredentials
  - Envelope, Pagination, ErrorResponse, FieldError

3. Gateway Response Models:
  - APIResponse, APIError, Metadata

Mapping:

Remote items reach the core only through ToCatalogItem, which resolves
relative image paths against the asset base URL. The inverse mapping
(FromCatalogItem) is used for write requests.
*/
package models
