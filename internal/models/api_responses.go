// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package models

import (
	"time"
)

// APIResponse is the envelope of every gateway response.
//
//	{"status": "success", "data": {...}, "metadata": {"timestamp": "...", "request_id": "..."}}
//	{"status": "error", "data": null, "error": {"code": "CATALOG_LOADING", "message": "..."}, "metadata": {...}}
//
// Metadata is filled in by the writer at send time.
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata identifies a single gateway response.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

// APIError is the machine-readable failure in an error envelope. Details
// carries per-field messages under "fields" for validation failures.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Success wraps data in a success envelope.
func Success(data interface{}) *APIResponse {
	return &APIResponse{Status: StatusSuccess, Data: data}
}

// Failure builds an error envelope. details may be nil.
func Failure(code, message string, details map[string]interface{}) *APIResponse {
	return &APIResponse{
		Status: StatusError,
		Error:  &APIError{Code: code, Message: message, Details: details},
	}
}
