// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package auth

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/tomtom215/analoguememory/internal/kvstore"
)

// Storage keys.
const (
	TokenKey      = "auth_token"
	UserKey       = "auth_user"
	RememberMeKey = "auth_remember_me"
)

// tieredStore reads from durable then session and writes to one of them.
type tieredStore struct {
	durable kvstore.Store
	session kvstore.Store
	logger  zerolog.Logger
}

func (t tieredStore) get(key string) ([]byte, bool) {
	for _, s := range []kvstore.Store{t.durable, t.session} {
		v, err := s.Get(key)
		if err == nil {
			return v, true
		}
		if !errors.Is(err, kvstore.ErrNotFound) {
			t.logger.Debug().Err(err).Str("key", key).Msg("Auth storage read failed")
		}
	}
	return nil, false
}

func (t tieredStore) set(key string, value []byte, durable bool) error {
	if durable {
		return t.durable.Set(key, value)
	}
	return t.session.Set(key, value)
}

// remove deletes key from both stores and returns the first error.
func (t tieredStore) remove(key string) error {
	return errors.Join(t.durable.Delete(key), t.session.Delete(key))
}
