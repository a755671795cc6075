// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

// Package share builds share text and platform links for catalog items.
package share

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/tomtom215/analoguememory/internal/models"
)

// Platform is a share target.
type Platform string

const (
	Facebook Platform = "facebook"
	Twitter  Platform = "twitter"
	Email    Platform = "email"
	Copy     Platform = "copy"
)

// Platforms lists every supported target in display order.
var Platforms = []Platform{Facebook, Twitter, Email, Copy}

// ErrUnknownPlatform is returned by Link for unsupported platforms.
var ErrUnknownPlatform = errors.New("unknown share platform")

// Title is the share headline of item.
func Title(item models.CatalogItem) string {
	return "Check out this memory: " + item.Title
}

// Text is the share body: the description, or a generated sentence when the
// item has none.
func Text(item models.CatalogItem) string {
	if item.Description != "" {
		return item.Description
	}
	return fmt.Sprintf("A nostalgic %s from %d.", strings.ToLower(item.Category), item.Year)
}

// Link returns the share URL for platform. For Copy it returns the text to
// put on the clipboard.
func Link(platform Platform, item models.CatalogItem, pageURL string) (string, error) {
	title := Title(item)

	switch platform {
	case Facebook:
		return "https://www.facebook.com/sharer/sharer.php?u=" + encodeComponent(pageURL) +
			"&quote=" + encodeComponent(title), nil
	case Twitter:
		return "https://twitter.com/intent/tweet?text=" + encodeComponent(title) +
			"&url=" + encodeComponent(pageURL), nil
	case Email:
		return "mailto:?subject=" + encodeComponent(title) +
			"&body=" + encodeComponent(title+"\n\n"+pageURL), nil
	case Copy:
		return title + "\n" + pageURL, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, platform)
	}
}

// Links returns the link of every platform keyed by platform name.
func Links(item models.CatalogItem, pageURL string) map[Platform]string {
	out := make(map[Platform]string, len(Platforms))
	for _, p := range Platforms {
		link, _ := Link(p, item, pageURL)
		out[p] = link
	}
	return out
}

// encodeComponent escapes s for use inside a query value, with spaces as %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
