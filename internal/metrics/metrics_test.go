// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/items", "200"))

	RecordAPIRequest("GET", "/api/v1/items", "200", 5*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/items", "200"))
	if after-before != 1 {
		t.Errorf("expected counter to increase by 1, got %v", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("expected %v active requests, got %v", before+1, got)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("expected %v active requests, got %v", before, got)
	}
}

func TestRecordCatalogRefresh(t *testing.T) {
	mockBefore := testutil.ToFloat64(CatalogRefreshTotal.WithLabelValues("mock"))
	errBefore := testutil.ToFloat64(CatalogRefreshTotal.WithLabelValues("error"))

	RecordCatalogRefresh("mock", 12, 6, time.Millisecond, nil)
	if got := testutil.ToFloat64(CatalogItems); got != 12 {
		t.Errorf("expected catalog_items 12, got %v", got)
	}
	if got := testutil.ToFloat64(CatalogCategories); got != 6 {
		t.Errorf("expected catalog_categories 6, got %v", got)
	}

	RecordCatalogRefresh("remote", 99, 9, time.Millisecond, errors.New("boom"))
	if got := testutil.ToFloat64(CatalogItems); got != 12 {
		t.Errorf("failed refresh must not change catalog_items, got %v", got)
	}

	if d := testutil.ToFloat64(CatalogRefreshTotal.WithLabelValues("mock")) - mockBefore; d != 1 {
		t.Errorf("expected 1 mock refresh, got %v", d)
	}
	if d := testutil.ToFloat64(CatalogRefreshTotal.WithLabelValues("error")) - errBefore; d != 1 {
		t.Errorf("expected 1 failed refresh, got %v", d)
	}
}

func TestRecordCollectionChange(t *testing.T) {
	RecordCollectionChange("add", 3)
	if got := testutil.ToFloat64(CollectionSize); got != 3 {
		t.Errorf("expected collection size 3, got %v", got)
	}
}

func TestRecordCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(CacheHits.WithLabelValues("test"))
	misses := testutil.ToFloat64(CacheMisses.WithLabelValues("test"))

	RecordCacheLookup("test", true)
	RecordCacheLookup("test", false)
	RecordCacheLookup("test", false)

	if d := testutil.ToFloat64(CacheHits.WithLabelValues("test")) - hits; d != 1 {
		t.Errorf("expected 1 hit, got %v", d)
	}
	if d := testutil.ToFloat64(CacheMisses.WithLabelValues("test")) - misses; d != 2 {
		t.Errorf("expected 2 misses, got %v", d)
	}
}
