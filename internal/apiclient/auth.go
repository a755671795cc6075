// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tomtom215/analoguememory/internal/models"
)

// Login exchanges credentials for a token and user profile. Credentials
// are not validated here; the auth package does that before calling.
func (c *Client) Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthPayload, error) {
	env, err := call[models.AuthPayload](ctx, c, http.MethodPost, "/users/login", creds)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return env.Data, nil
}

// Register creates an account and returns its token and profile.
func (c *Client) Register(ctx context.Context, creds models.RegisterCredentials) (*models.AuthPayload, error) {
	env, err := call[models.AuthPayload](ctx, c, http.MethodPost, "/users/register", creds)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return env.Data, nil
}
