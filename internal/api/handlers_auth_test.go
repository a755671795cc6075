// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package api

import (
	"net/http"
	"testing"

	"github.com/tomtom215/analoguememory/internal/apiclient"
	"github.com/tomtom215/analoguememory/internal/models"
	"github.com/tomtom215/analoguememory/internal/validation"
)

func TestLogin(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, true)

	rec, body := env.do(t, http.MethodGet, "/api/v1/auth/me", "")
	expectError(t, rec, body, http.StatusUnauthorized, ErrCodeUnauthorized)

	rec, body = env.do(t, http.MethodPost, "/api/v1/auth/login",
		`{"email":"tom@example.com","password":"secret1","remember_me":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: status = %d", rec.Code)
	}
	resp := decodeData[SessionResponse](t, body)
	if !resp.Authenticated || resp.User == nil || resp.User.Email != "tom@example.com" {
		t.Errorf("login response = %+v", resp)
	}
	if !env.sessions.remember {
		t.Error("remember_me not passed through")
	}

	rec, body = env.do(t, http.MethodGet, "/api/v1/auth/me", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("me: status = %d", rec.Code)
	}
	if resp := decodeData[SessionResponse](t, body); resp.User == nil || resp.User.ID != "u1" {
		t.Errorf("me = %+v", resp)
	}

	rec, _ = env.do(t, http.MethodPost, "/api/v1/auth/logout", "")
	if rec.Code != http.StatusOK || !env.sessions.loggedOut {
		t.Errorf("logout: status = %d, logged out = %v", rec.Code, env.sessions.loggedOut)
	}
	rec, body = env.do(t, http.MethodGet, "/api/v1/auth/me", "")
	expectError(t, rec, body, http.StatusUnauthorized, ErrCodeUnauthorized)
}

func TestLogin_Errors(t *testing.T) {
	t.Parallel()

	var verr error
	if v := validation.ValidateStruct(&models.LoginCredentials{Email: "nope", Password: "x"}); v != nil {
		verr = v
	}

	tests := []struct {
		name   string
		err    error
		body   string
		status int
		code   string
	}{
		{"validation", verr, `{"email":"nope","password":"x"}`, http.StatusBadRequest, ErrCodeValidation},
		{"bad credentials", &apiclient.APIError{StatusCode: http.StatusUnauthorized, Message: "Invalid credentials"},
			`{"email":"tom@example.com","password":"wrong12"}`, http.StatusUnauthorized, ErrCodeUnauthorized},
		{"backend down", &apiclient.APIError{StatusCode: http.StatusInternalServerError, Message: "boom"},
			`{"email":"tom@example.com","password":"secret1"}`, http.StatusBadGateway, ErrCodeExternalServiceFail},
		{"bad json", nil, `{"email":`, http.StatusBadRequest, ErrCodeBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t, true)
			env.sessions.err = tt.err
			rec, body := env.do(t, http.MethodPost, "/api/v1/auth/login", tt.body)
			expectError(t, rec, body, tt.status, tt.code)
		})
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, true)

	rec, body := env.do(t, http.MethodPost, "/api/v1/auth/register",
		`{"username":"retrofan","email":"fan@example.com","password":"secret1"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	if resp := decodeData[SessionResponse](t, body); resp.User == nil || resp.User.Username != "retrofan" {
		t.Errorf("register response = %+v", resp)
	}
}

func TestAuth_Disabled(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, true, withoutSessions())

	rec, body := env.do(t, http.MethodPost, "/api/v1/auth/login", `{"email":"a@b.c","password":"secret1"}`)
	expectError(t, rec, body, http.StatusServiceUnavailable, ErrCodeServiceUnavailable)

	// Collection endpoints keep working without auth.
	rec, _ = env.do(t, http.MethodPost, "/api/v1/collection/1", "")
	if rec.Code != http.StatusOK {
		t.Errorf("add without auth configured: status = %d", rec.Code)
	}
}
