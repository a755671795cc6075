// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// normalizeBaseURL checks that raw is an absolute http(s) base URL and
// returns it without a trailing slash, so callers can append "/items" etc.
// Paths are kept; query strings, fragments and credentials are rejected.
func normalizeBaseURL(raw, name string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("%s is required", name)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%s is not a valid URL: %w", name, err)
	}
	switch {
	case u.Scheme != "http" && u.Scheme != "https":
		return "", fmt.Errorf("%s scheme must be http or https, got: %q", name, u.Scheme)
	case u.Host == "":
		return "", fmt.Errorf("%s host is required", name)
	case u.RawQuery != "":
		return "", fmt.Errorf("%s should not contain query parameters, remove: ?%s", name, u.RawQuery)
	case u.Fragment != "":
		return "", fmt.Errorf("%s should not contain a fragment", name)
	case u.User != nil:
		return "", fmt.Errorf("%s must not embed credentials", name)
	}

	return strings.TrimRight(raw, "/"), nil
}
