// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

// Package collection manages the user's personal collection: the set of
// owned catalog item ids plus a short-lived "recently added" highlight.
package collection

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/analoguememory/internal/kvstore"
	"github.com/tomtom215/analoguememory/internal/logging"
	"github.com/tomtom215/analoguememory/internal/metrics"
	"github.com/tomtom215/analoguememory/internal/models"
)

const (
	// DefaultKey is the key-value entry holding the collection snapshot.
	DefaultKey = "userCollection"

	// DefaultHighlight is how long an added item stays marked as recently added.
	DefaultHighlight = 3 * time.Second
)

// Snapshot is the persisted collection state.
type Snapshot struct {
	Items         []string `json:"items"`
	RecentlyAdded *string  `json:"recentlyAdded"`
}

// Config configures a Store. Zero values select the defaults.
type Config struct {
	Key       string
	Highlight time.Duration
	Clock     Clock
}

// Store is the personal collection. It is safe for concurrent use.
//
// The highlight is cleared by a timer scheduled on each Add. Every Add or
// Remove bumps a generation counter and stops the pending timer, and a timer
// only clears the highlight if its generation is still current. A superseded
// timer therefore never clears a newer highlight, even if Stop lost the race
// with the timer firing.
type Store struct {
	kv        kvstore.Store
	key       string
	highlight time.Duration
	clock     Clock
	logger    zerolog.Logger

	mu            sync.RWMutex
	items         []string
	recentlyAdded string
	generation    uint64
	timer         Timer
	closed        bool
}

// New creates a Store seeded from the snapshot in kv. Missing or malformed
// data yields an empty collection; New never fails.
func New(kv kvstore.Store, cfg Config) *Store {
	if cfg.Key == "" {
		cfg.Key = DefaultKey
	}
	if cfg.Highlight <= 0 {
		cfg.Highlight = DefaultHighlight
	}
	if cfg.Clock == nil {
		cfg.Clock = RealClock()
	}

	s := &Store{
		kv:        kv,
		key:       cfg.Key,
		highlight: cfg.Highlight,
		clock:     cfg.Clock,
		logger:    logging.WithComponent("collection"),
	}

	snap := s.restore()
	s.items = snap.Items
	if snap.RecentlyAdded != nil {
		// A restored highlight still expires.
		s.recentlyAdded = *snap.RecentlyAdded
		s.scheduleClearLocked()
	}
	metrics.CollectionSize.Set(float64(len(s.items)))
	return s
}

func (s *Store) restore() Snapshot {
	empty := Snapshot{Items: []string{}}

	data, err := s.kv.Get(s.key)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			s.logger.Warn().Err(err).Str("key", s.key).Msg("Failed to read stored collection, starting empty")
		}
		return empty
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.logger.Debug().Err(err).Str("key", s.key).Msg("Ignoring malformed stored collection")
		return empty
	}
	return normalize(snap)
}

// normalize drops empty and duplicate ids and a highlight that is not owned.
func normalize(snap Snapshot) Snapshot {
	seen := make(map[string]struct{}, len(snap.Items))
	items := make([]string, 0, len(snap.Items))
	for _, id := range snap.Items {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		items = append(items, id)
	}

	out := Snapshot{Items: items}
	if snap.RecentlyAdded != nil {
		if _, ok := seen[*snap.RecentlyAdded]; ok {
			ra := *snap.RecentlyAdded
			out.RecentlyAdded = &ra
		}
	}
	return out
}

// Add puts id in the collection and marks it as recently added. Adding an
// id that is already owned changes nothing, including the highlight.
func (s *Store) Add(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" || slices.Contains(s.items, id) {
		return
	}

	s.items = append(s.items, id)
	s.recentlyAdded = id
	s.scheduleClearLocked()
	s.persistLocked()
	metrics.RecordCollectionChange("add", len(s.items))
}

// Remove drops id from the collection if present and always clears the
// highlight.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = slices.DeleteFunc(s.items, func(v string) bool { return v == id })
	s.cancelClearLocked()
	s.recentlyAdded = ""
	s.persistLocked()
	metrics.RecordCollectionChange("remove", len(s.items))
}

// IsInCollection reports whether id is owned.
func (s *Store) IsInCollection(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.items, id)
}

// IsRecentlyAdded reports whether id carries the highlight.
func (s *Store) IsRecentlyAdded(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recentlyAdded != "" && s.recentlyAdded == id
}

// RecentlyAdded returns the highlighted id, if any.
func (s *Store) RecentlyAdded() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recentlyAdded, s.recentlyAdded != ""
}

// IDs returns the owned ids in insertion order.
func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

// Len returns the number of owned ids.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Snapshot returns the current state in its persisted shape.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Items returns the catalog items that are owned, in catalog order. Owned
// ids missing from the catalog are skipped.
func (s *Store) Items(catalog []models.CatalogItem) []models.CatalogItem {
	s.mu.RLock()
	owned := make(map[string]struct{}, len(s.items))
	for _, id := range s.items {
		owned[id] = struct{}{}
	}
	s.mu.RUnlock()

	out := make([]models.CatalogItem, 0, len(owned))
	for i := range catalog {
		if _, ok := owned[catalog[i].ID]; ok {
			out = append(out, catalog[i])
		}
	}
	return out
}

// Close stops the pending highlight timer. The collection stays readable;
// later mutations still persist but no longer schedule timers.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelClearLocked()
	s.closed = true
}

func (s *Store) scheduleClearLocked() {
	s.cancelClearLocked()
	if s.closed {
		return
	}
	gen := s.generation
	s.timer = s.clock.AfterFunc(s.highlight, func() { s.clearHighlight(gen) })
}

func (s *Store) cancelClearLocked() {
	s.generation++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Store) clearHighlight(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation || s.recentlyAdded == "" {
		return
	}
	s.recentlyAdded = ""
	s.timer = nil
	s.persistLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{Items: slices.Clone(s.items)}
	if snap.Items == nil {
		snap.Items = []string{}
	}
	if s.recentlyAdded != "" {
		ra := s.recentlyAdded
		snap.RecentlyAdded = &ra
	}
	return snap
}

func (s *Store) persistLocked() {
	data, err := json.Marshal(s.snapshotLocked())
	if err == nil {
		err = s.kv.Set(s.key, data)
	}
	if err != nil {
		metrics.CollectionPersistErrors.Inc()
		s.logger.Error().Err(err).Str("key", s.key).Msg("Failed to persist collection")
	}
}
