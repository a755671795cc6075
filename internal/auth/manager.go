// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/analoguememory/internal/kvstore"
	"github.com/tomtom215/analoguememory/internal/logging"
	"github.com/tomtom215/analoguememory/internal/models"
	"github.com/tomtom215/analoguememory/internal/validation"
)

// ErrNotAuthenticated is returned by operations that need a signed-in user.
var ErrNotAuthenticated = errors.New("not authenticated")

// Remote is the part of the API client the manager needs.
type Remote interface {
	Login(ctx context.Context, creds models.LoginCredentials) (*models.AuthPayload, error)
	Register(ctx context.Context, creds models.RegisterCredentials) (*models.AuthPayload, error)
}

// Manager stores the current token and user.
type Manager struct {
	remote Remote
	store  tieredStore
	now    func() time.Time
	logger zerolog.Logger

	mu sync.Mutex
}

// NewManager creates a Manager. durable and session should be distinct
// stores; remember-me has no effect otherwise.
func NewManager(remote Remote, durable, session kvstore.Store) *Manager {
	logger := logging.WithComponent("auth")
	return &Manager{
		remote: remote,
		store:  tieredStore{durable: durable, session: session, logger: logger},
		now:    time.Now,
		logger: logger,
	}
}

// Token returns the stored bearer token, or "" when there is none or it has
// expired.
func (m *Manager) Token() string {
	raw, ok := m.store.get(TokenKey)
	if !ok || len(raw) == 0 {
		return ""
	}
	token := string(raw)
	if tokenExpired(token, m.now()) {
		return ""
	}
	return token
}

// IsAuthenticated reports whether a usable token is stored.
func (m *Manager) IsAuthenticated() bool {
	return m.Token() != ""
}

// User returns the stored profile. ok is false when no user is stored or
// the stored value cannot be decoded.
func (m *Manager) User() (user models.User, ok bool) {
	raw, found := m.store.get(UserKey)
	if !found {
		return models.User{}, false
	}
	if err := json.Unmarshal(raw, &user); err != nil {
		m.logger.Debug().Err(err).Msg("Ignoring malformed stored user")
		return models.User{}, false
	}
	return user, true
}

// RememberMe returns the last remember-me choice made at login.
func (m *Manager) RememberMe() bool {
	raw, err := m.store.durable.Get(RememberMeKey)
	return err == nil && string(raw) == "true"
}

// Login validates creds, signs in against the backend and stores the
// result. remember selects the durable store.
func (m *Manager) Login(ctx context.Context, creds models.LoginCredentials, remember bool) (*models.User, error) {
	if verr := validation.ValidateStruct(creds); verr != nil {
		return nil, verr
	}

	payload, err := m.remote.Login(ctx, creds)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.saveLocked(payload, remember); err != nil {
		return nil, err
	}
	if err := m.store.durable.Set(RememberMeKey, []byte(fmt.Sprint(remember))); err != nil {
		m.logger.Warn().Err(err).Msg("Failed to persist remember-me choice")
	}

	logging.Ctx(ctx).Info().Str("user_id", payload.User.ID).Bool("remember", remember).Msg("User logged in")
	return &payload.User, nil
}

// Register validates creds, creates the account and signs the new user in
// for this session only.
func (m *Manager) Register(ctx context.Context, creds models.RegisterCredentials) (*models.User, error) {
	if verr := validation.ValidateStruct(creds); verr != nil {
		return nil, verr
	}

	payload, err := m.remote.Register(ctx, creds)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.saveLocked(payload, false); err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Info().Str("user_id", payload.User.ID).Msg("User registered")
	return &payload.User, nil
}

// Logout clears the token and user from both stores.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := errors.Join(m.store.remove(TokenKey), m.store.remove(UserKey)); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// saveLocked replaces any previous sign-in with payload.
func (m *Manager) saveLocked(payload *models.AuthPayload, remember bool) error {
	userJSON, err := json.Marshal(payload.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	// Drop the other tier so a stale token cannot shadow the new one.
	if err := errors.Join(m.store.remove(TokenKey), m.store.remove(UserKey)); err != nil {
		return fmt.Errorf("clear previous session: %w", err)
	}
	if err := m.store.set(TokenKey, []byte(payload.Token), remember); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	if err := m.store.set(UserKey, userJSON, remember); err != nil {
		return fmt.Errorf("store user: %w", err)
	}
	return nil
}
