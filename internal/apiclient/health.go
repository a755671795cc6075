// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/analoguememory/internal/models"
)

// Health calls the backend's /health endpoint, which lives at the server
// root rather than under the /api prefix. It is never cached.
func (c *Client) Health(ctx context.Context) (*models.HealthStatus, error) {
	root := strings.TrimSuffix(c.baseURL, "/api")

	status, data, err := c.do(ctx, http.MethodGet, root+"/health", nil)
	if err != nil {
		return nil, fmt.Errorf("health check: %w", err)
	}

	var health models.HealthStatus
	if err := json.Unmarshal(data, &health); err != nil {
		return nil, fmt.Errorf("health check: %w", malformed(status, "invalid JSON: %v", err))
	}
	return &health, nil
}
