// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/analoguememory/internal/apiclient"
	"github.com/tomtom215/analoguememory/internal/logging"
	"github.com/tomtom215/analoguememory/internal/models"
	"github.com/tomtom215/analoguememory/internal/validation"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 64 << 10

// sanitizeLogValue strips control characters from values that reach logs.
func sanitizeLogValue(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, r *http.Request, status int, response *models.APIResponse) {
	response.Metadata.Timestamp = time.Now().UTC()
	response.Metadata.RequestID = logging.RequestIDFromContext(r.Context())

	data, err := json.Marshal(response)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondData sends a success envelope.
func respondData(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	respondJSON(w, r, status, models.Success(data))
}

// respondError sends an error response
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	if err != nil {
		logging.Ctx(r.Context()).Error().
			Str("code", code).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API Error")
	}
	respondJSON(w, r, status, models.Failure(code, message, nil))
}

// respondValidation sends a 400 VALIDATION_ERROR built from verr.
func respondValidation(w http.ResponseWriter, r *http.Request, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	respondJSON(w, r, http.StatusBadRequest, models.Failure(apiErr.Code, apiErr.Message, apiErr.Details))
}

// respondUpstreamError maps errors from the remote backend (and the auth
// layer in front of it) to gateway responses.
func respondUpstreamError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.RequestValidationError
	if errors.As(err, &verr) {
		respondValidation(w, r, verr)
		return
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeRemoteUnavailable,
			"The memory service is temporarily unavailable", err)
		return
	}
	if errors.Is(err, context.DeadlineExceeded) {
		respondError(w, r, http.StatusGatewayTimeout, ErrCodeGatewayTimeout, "The memory service did not respond in time", err)
		return
	}

	if apiErr, ok := apiclient.AsAPIError(err); ok && apiErr.IsClientError() {
		code := apiErr.Code
		switch {
		case code != "":
		case errors.Is(err, apiclient.ErrNotFound):
			code = ErrCodeNotFound
		case apiErr.StatusCode == http.StatusUnauthorized:
			code = ErrCodeUnauthorized
		default:
			code = ErrCodeUpstreamRejected
		}
		var details map[string]interface{}
		if len(apiErr.Fields) > 0 {
			fields := make(map[string]interface{}, len(apiErr.Fields))
			for k, v := range apiErr.Fields {
				fields[k] = v
			}
			details = map[string]interface{}{"fields": fields}
		}
		respondJSON(w, r, apiErr.StatusCode, models.Failure(code, apiErr.Message, details))
		return
	}

	respondError(w, r, http.StatusBadGateway, ErrCodeExternalServiceFail, "The memory service returned an error", err)
}

// requireCatalog answers 503 CATALOG_LOADING and returns false until the
// first catalog load has finished.
func (h *Handler) requireCatalog(w http.ResponseWriter, r *http.Request) bool {
	if h.catalog.Loaded() {
		return true
	}
	w.Header().Set("Retry-After", "2")
	respondError(w, r, http.StatusServiceUnavailable, ErrCodeCatalogLoading, "Catalog is still loading", nil)
	return false
}

// validateRequest validates a struct using go-playground/validator and
// writes the 400 response itself. It returns false when validation failed.
func validateRequest(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if verr := validation.ValidateStruct(v); verr != nil {
		respondValidation(w, r, verr)
		return false
	}
	return true
}

// decodeJSONBody decodes the request body into dst. An empty body leaves dst
// untouched when allowEmpty is set.
func decodeJSONBody(r *http.Request, dst interface{}, allowEmpty bool) error {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if len(data) > maxBodyBytes {
		return fmt.Errorf("request body exceeds %d bytes", maxBodyBytes)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		if allowEmpty {
			return nil
		}
		return errors.New("request body is required")
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}

// getIntParam extracts an integer query parameter. Missing values yield
// defaultValue; malformed values yield -1 so validation rejects them.
func getIntParam(r *http.Request, key string, defaultValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return -1
	}
	return n
}

// getBoolParam parses true/false style query parameters.
func getBoolParam(r *http.Request, key string) bool {
	b, err := strconv.ParseBool(r.URL.Query().Get(key))
	return err == nil && b
}
