// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package api

// Error codes for API responses
const (
	ErrCodeBadRequest          = "BAD_REQUEST"
	ErrCodeUnauthorized        = "UNAUTHORIZED"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeItemNotFound        = "ITEM_NOT_FOUND"
	ErrCodeCatalogLoading      = "CATALOG_LOADING"
	ErrCodeInternalError       = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable  = "SERVICE_UNAVAILABLE"
	ErrCodeGatewayTimeout      = "GATEWAY_TIMEOUT"
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeExternalServiceFail = "EXTERNAL_SERVICE_FAILED"
	ErrCodeUpstreamRejected    = "UPSTREAM_REJECTED"
	ErrCodeRemoteUnavailable   = "REMOTE_UNAVAILABLE"
	ErrCodeRateLimited         = "RATE_LIMITED"
)
