// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/analoguememory/internal/apiclient"
	"github.com/tomtom215/analoguememory/internal/catalog"
	"github.com/tomtom215/analoguememory/internal/collection"
	"github.com/tomtom215/analoguememory/internal/kvstore"
	"github.com/tomtom215/analoguememory/internal/models"
	"github.com/tomtom215/analoguememory/internal/theme"
)

// fakeRemote records collection calls and returns canned results.
type fakeRemote struct {
	mu         sync.Mutex
	added      []string
	removed    []string
	notes      map[string]string
	collection []apiclient.CollectionItem
	err        error
	healthErr  error
}

func (f *fakeRemote) Collection(context.Context) ([]apiclient.CollectionItem, error) {
	return f.collection, f.err
}

func (f *fakeRemote) AddToCollection(_ context.Context, id, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.added = append(f.added, id)
	return nil
}

func (f *fakeRemote) RemoveFromCollection(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.removed = append(f.removed, id)
	return nil
}

func (f *fakeRemote) UpdateNotes(_ context.Context, id, notes string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if f.notes == nil {
		f.notes = make(map[string]string)
	}
	f.notes[id] = notes
	return nil
}

func (f *fakeRemote) Health(context.Context) (*models.HealthStatus, error) {
	if f.healthErr != nil {
		return nil, f.healthErr
	}
	return &models.HealthStatus{Status: "ok", Message: "all good"}, nil
}

// fakeSessions is an in-memory Sessions.
type fakeSessions struct {
	user      *models.User
	err       error
	remember  bool
	loggedOut bool
}

func (f *fakeSessions) Login(_ context.Context, creds models.LoginCredentials, remember bool) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.remember = remember
	f.user = &models.User{ID: "u1", Email: creds.Email, Username: "tom"}
	return f.user, nil
}

func (f *fakeSessions) Register(_ context.Context, creds models.RegisterCredentials) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.user = &models.User{ID: "u2", Email: creds.Email, Username: creds.Username}
	return f.user, nil
}

func (f *fakeSessions) Logout() error {
	f.user = nil
	f.loggedOut = true
	return nil
}

func (f *fakeSessions) User() (models.User, bool) {
	if f.user == nil {
		return models.User{}, false
	}
	return *f.user, true
}

func (f *fakeSessions) IsAuthenticated() bool { return f.user != nil }

type testEnv struct {
	catalog    *catalog.Store
	collection *collection.Store
	remote     *fakeRemote
	sessions   *fakeSessions
	handler    http.Handler
}

type envOption func(*Dependencies)

func withoutRemote() envOption {
	return func(d *Dependencies) { d.Remote = nil }
}

func withoutSessions() envOption {
	return func(d *Dependencies) { d.Sessions = nil }
}

// newTestEnv builds a router over the mock catalog with rate limiting off.
func newTestEnv(t *testing.T, loaded bool, opts ...envOption) *testEnv {
	t.Helper()

	store := catalog.NewStore()
	if loaded {
		store.Replace(catalog.MockItems(), catalog.MockCategories(), "mock")
	}
	coll := collection.New(kvstore.NewMemoryStore(), collection.Config{})
	t.Cleanup(coll.Close)

	env := &testEnv{
		catalog:    store,
		collection: coll,
		remote:     &fakeRemote{},
		sessions:   &fakeSessions{},
	}
	deps := Dependencies{
		Catalog:       store,
		Collection:    coll,
		Theme:         theme.NewStore(kvstore.NewMemoryStore()),
		Remote:        env.remote,
		Sessions:      env.sessions,
		MirrorTimeout: time.Second,
		Version:       "test",
	}
	for _, opt := range opts {
		opt(&deps)
	}

	mw := NewChiMiddlewareFromSecurity([]string{"*"}, 100, time.Minute, true)
	env.handler = NewRouter(NewHandler(deps), mw).SetupChi()
	return env
}

func (e *testEnv) signIn() {
	e.sessions.user = &models.User{ID: "u1", Email: "tom@example.com", Username: "tom"}
}

// testEnvelope mirrors models.APIResponse with raw data.
type testEnvelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func (e *testEnv) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)

	var env testEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: invalid JSON response %q: %v", method, target, rec.Body.String(), err)
	}
	return rec, env
}

func decodeData[T any](t *testing.T, env testEnvelope) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode data %s: %v", env.Data, err)
	}
	return out
}

func itemIDs(items []ItemView) []string {
	ids := make([]string, len(items))
	for i := range items {
		ids[i] = items[i].ID
	}
	return ids
}

func expectError(t *testing.T, rec *httptest.ResponseRecorder, env testEnvelope, status int, code string) {
	t.Helper()
	if rec.Code != status {
		t.Errorf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	if env.Status != "error" || env.Error == nil {
		t.Fatalf("expected error envelope, got %s", rec.Body.String())
	}
	if env.Error.Code != code {
		t.Errorf("error code = %q, want %q", env.Error.Code, code)
	}
}
