// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpiry extracts the "exp" claim of a JWT without verifying the
// signature. ok is false for opaque tokens and JWTs without an expiry.
func tokenExpiry(token string) (exp time.Time, ok bool) {
	if strings.Count(token, ".") != 2 {
		return time.Time{}, false
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// tokenExpired reports whether token carries an expiry at or before now.
func tokenExpired(token string, now time.Time) bool {
	exp, ok := tokenExpiry(token)
	return ok && !now.Before(exp)
}
