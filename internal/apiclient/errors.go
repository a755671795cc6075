// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// DefaultErrorMessage is used when an error response carries no message.
const DefaultErrorMessage = "Something went wrong"

var (
	// ErrMalformedEnvelope marks a 2xx response whose body is not a valid
	// success envelope: bad JSON, status other than "success", missing data,
	// or a payload that fails validation.
	ErrMalformedEnvelope = errors.New("malformed response envelope")

	// ErrNotFound matches any APIError with status 404 via errors.Is.
	ErrNotFound = errors.New("not found")
)

// APIError is returned for every failed exchange with the remote backend
// once a response was received.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	// Fields holds field-level validation messages keyed by field name.
	Fields map[string]string

	err error
}

// Error implements error.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Unwrap exposes the underlying cause (e.g. ErrMalformedEnvelope).
func (e *APIError) Unwrap() error { return e.err }

// Is makes errors.Is(err, ErrNotFound) true for 404 responses.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// IsClientError reports whether the request itself was rejected (4xx).
func (e *APIError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

func malformed(status int, format string, args ...interface{}) *APIError {
	return &APIError{
		StatusCode: status,
		Code:       "MALFORMED_RESPONSE",
		Message:    fmt.Sprintf(format, args...),
		err:        ErrMalformedEnvelope,
	}
}

// AsAPIError is errors.As for *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
