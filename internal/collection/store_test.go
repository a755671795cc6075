// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package collection

import (
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/analoguememory/internal/kvstore"
	"github.com/tomtom215/analoguememory/internal/models"
)

// manualClock fires callbacks only when Advance passes their deadline.
type manualClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
}

type manualTimer struct {
	clock   *manualClock
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{clock: c, at: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	wasActive := !t.stopped && !t.fired
	t.stopped = true
	return wasActive
}

// Advance moves time forward and runs due callbacks in deadline order.
func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*manualTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && t.at <= c.now {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	slices.SortStableFunc(due, func(a, b *manualTimer) int { return int(a.at - b.at) })
	for _, t := range due {
		t.f()
	}
}

// fireAll runs every callback ever scheduled, including stopped ones, to
// simulate a Stop that lost the race with the timer goroutine.
func (c *manualClock) fireAll() {
	c.mu.Lock()
	all := slices.Clone(c.timers)
	c.mu.Unlock()
	for _, t := range all {
		t.f()
	}
}

func newTestStore(t *testing.T) (*Store, *kvstore.MemoryStore, *manualClock) {
	t.Helper()
	kv := kvstore.NewMemoryStore()
	clock := &manualClock{}
	s := New(kv, Config{Clock: clock})
	t.Cleanup(s.Close)
	return s, kv, clock
}

func storedSnapshot(t *testing.T, kv kvstore.Store) Snapshot {
	t.Helper()
	data, err := kv.Get(DefaultKey)
	if err != nil {
		t.Fatalf("expected persisted snapshot: %v", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("persisted snapshot is not valid JSON: %v", err)
	}
	return snap
}

func TestStore_AddAndQuery(t *testing.T) {
	t.Parallel()

	s, kv, _ := newTestStore(t)
	s.Add("1")

	if !s.IsInCollection("1") {
		t.Error("expected 1 in collection")
	}
	if !s.IsRecentlyAdded("1") {
		t.Error("expected 1 to be recently added")
	}
	if s.IsInCollection("2") || s.IsRecentlyAdded("2") {
		t.Error("2 was never added")
	}

	snap := storedSnapshot(t, kv)
	if !slices.Equal(snap.Items, []string{"1"}) || snap.RecentlyAdded == nil || *snap.RecentlyAdded != "1" {
		t.Errorf("unexpected persisted snapshot: %+v", snap)
	}
}

func TestStore_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	s, _, clock := newTestStore(t)
	s.Add("1")
	s.Add("2")
	clock.Advance(time.Second)
	s.Add("1")

	if got := s.IDs(); !slices.Equal(got, []string{"1", "2"}) {
		t.Errorf("expected [1 2], got %v", got)
	}
	// Re-adding 1 must not move the highlight away from 2 or reset its timer.
	if !s.IsRecentlyAdded("2") {
		t.Error("highlight should still be on 2")
	}
	clock.Advance(2 * time.Second)
	if _, ok := s.RecentlyAdded(); ok {
		t.Error("highlight should have cleared 3s after adding 2")
	}
}

func TestStore_RemoveThenQuery(t *testing.T) {
	t.Parallel()

	s, kv, _ := newTestStore(t)
	s.Add("1")
	s.Add("2")
	s.Remove("2")

	if s.IsInCollection("2") || s.IsRecentlyAdded("2") {
		t.Error("removed id must not be owned or highlighted")
	}
	if !s.IsInCollection("1") {
		t.Error("1 should remain")
	}

	snap := storedSnapshot(t, kv)
	if !slices.Equal(snap.Items, []string{"1"}) || snap.RecentlyAdded != nil {
		t.Errorf("unexpected persisted snapshot: %+v", snap)
	}
}

func TestStore_RemoveAlwaysClearsHighlight(t *testing.T) {
	t.Parallel()

	s, _, _ := newTestStore(t)
	s.Add("1")
	s.Add("2")
	s.Remove("1")

	if _, ok := s.RecentlyAdded(); ok {
		t.Error("remove of a different id should still clear the highlight")
	}

	s.Add("3")
	s.Remove("missing")
	if _, ok := s.RecentlyAdded(); ok {
		t.Error("remove of an unknown id should still clear the highlight")
	}
	if got := s.IDs(); !slices.Equal(got, []string{"2", "3"}) {
		t.Errorf("expected [2 3], got %v", got)
	}
}

func TestStore_HighlightClearsAfterDelay(t *testing.T) {
	t.Parallel()

	s, kv, clock := newTestStore(t)
	s.Add("1")

	clock.Advance(DefaultHighlight - time.Millisecond)
	if !s.IsRecentlyAdded("1") {
		t.Fatal("highlight cleared too early")
	}
	clock.Advance(time.Millisecond)
	if s.IsRecentlyAdded("1") {
		t.Fatal("highlight should clear after 3s")
	}
	if snap := storedSnapshot(t, kv); snap.RecentlyAdded != nil {
		t.Errorf("cleared highlight should be persisted, got %v", *snap.RecentlyAdded)
	}
	if !s.IsInCollection("1") {
		t.Error("clearing the highlight must not remove the item")
	}
}

func TestStore_RecentlyAddedRace(t *testing.T) {
	t.Parallel()

	s, _, clock := newTestStore(t)
	s.Add("A")
	clock.Advance(2 * time.Second)
	s.Add("B")

	if s.IsRecentlyAdded("A") {
		t.Fatal("A must not be highlighted after B was added")
	}

	// A's original deadline passes; B must keep the highlight.
	clock.Advance(time.Second + time.Millisecond)
	if s.IsRecentlyAdded("A") {
		t.Fatal("A must never be highlighted again")
	}
	if !s.IsRecentlyAdded("B") {
		t.Fatal("A's timer cleared B's highlight")
	}

	clock.Advance(2 * time.Second)
	if _, ok := s.RecentlyAdded(); ok {
		t.Error("highlight should be null after both timers")
	}
}

func TestStore_StaleTimerIgnoredEvenIfStopLost(t *testing.T) {
	t.Parallel()

	s, _, clock := newTestStore(t)
	s.Add("A")
	s.Add("B")

	// Run both callbacks regardless of Stop; only B's generation may act.
	clock.mu.Lock()
	first := clock.timers[0]
	clock.mu.Unlock()
	first.f()

	if !s.IsRecentlyAdded("B") {
		t.Fatal("stale timer cleared the current highlight")
	}

	clock.fireAll()
	if _, ok := s.RecentlyAdded(); ok {
		t.Error("current timer should clear the highlight")
	}
}

func TestStore_ConcurrentAdds(t *testing.T) {
	t.Parallel()

	kv := kvstore.NewMemoryStore()
	s := New(kv, Config{Highlight: time.Millisecond})
	defer s.Close()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			s.Add(id)
			s.IsRecentlyAdded(id)
		}(string(rune('a' + i%26)))
	}
	wg.Wait()

	if s.Len() != 26 {
		t.Errorf("expected 26 distinct ids, got %d", s.Len())
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, ok := s.RecentlyAdded(); !ok {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Error("highlight never cleared with the real clock")
}

func TestStore_RestoresFromKV(t *testing.T) {
	t.Parallel()

	kv := kvstore.NewMemoryStore()
	_ = kv.Set(DefaultKey, []byte(`{"items":["3","1"],"recentlyAdded":"1"}`))

	clock := &manualClock{}
	s := New(kv, Config{Clock: clock})
	defer s.Close()

	if got := s.IDs(); !slices.Equal(got, []string{"3", "1"}) {
		t.Errorf("expected restored [3 1], got %v", got)
	}
	if !s.IsRecentlyAdded("1") {
		t.Error("expected restored highlight")
	}
	clock.Advance(DefaultHighlight)
	if s.IsRecentlyAdded("1") {
		t.Error("restored highlight should still expire")
	}
}

func TestStore_MalformedStateFallsBack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		stored    string
		wantItems []string
		wantRA    bool
	}{
		{"invalid json", `{"items": [`, []string{}, false},
		{"wrong types", `{"items": "1", "recentlyAdded": 4}`, []string{}, false},
		{"null document", `null`, []string{}, false},
		{"duplicates removed", `{"items":["1","1","2",""],"recentlyAdded":null}`, []string{"1", "2"}, false},
		{"dangling highlight dropped", `{"items":["1"],"recentlyAdded":"9"}`, []string{"1"}, false},
		{"missing fields", `{}`, []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := kvstore.NewMemoryStore()
			_ = kv.Set(DefaultKey, []byte(tt.stored))

			s := New(kv, Config{Clock: &manualClock{}})
			defer s.Close()

			if got := s.IDs(); !slices.Equal(got, tt.wantItems) {
				t.Errorf("expected %v, got %v", tt.wantItems, got)
			}
			if _, ok := s.RecentlyAdded(); ok != tt.wantRA {
				t.Errorf("expected highlight %v, got %v", tt.wantRA, ok)
			}
		})
	}
}

type failingKV struct{ kvstore.MemoryStore }

func (f *failingKV) Get(string) ([]byte, error) { return nil, errors.New("disk gone") }
func (f *failingKV) Set(string, []byte) error   { return errors.New("disk full") }

func TestStore_PersistenceFailuresAreNotFatal(t *testing.T) {
	t.Parallel()

	s := New(&failingKV{}, Config{Clock: &manualClock{}})
	defer s.Close()

	s.Add("1")
	s.Remove("1")
	s.Add("2")

	if got := s.IDs(); !slices.Equal(got, []string{"2"}) {
		t.Errorf("in-memory state should still update, got %v", got)
	}
}

func TestStore_RoundTripThroughKV(t *testing.T) {
	t.Parallel()

	kv := kvstore.NewMemoryStore()
	first := New(kv, Config{Clock: &manualClock{}, Key: "custom"})
	first.Add("x")
	first.Add("y")
	first.Close()

	second := New(kv, Config{Clock: &manualClock{}, Key: "custom"})
	defer second.Close()
	if got := second.Snapshot(); !slices.Equal(got.Items, []string{"x", "y"}) || got.RecentlyAdded == nil || *got.RecentlyAdded != "y" {
		t.Errorf("unexpected round trip: %+v", got)
	}
}

func TestStore_Items(t *testing.T) {
	t.Parallel()

	s, _, _ := newTestStore(t)
	s.Add("3")
	s.Add("1")
	s.Add("gone")

	catalog := []models.CatalogItem{{ID: "1"}, {ID: "2"}, {ID: "3"}}
	got := s.Items(catalog)
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("expected catalog-ordered [1 3], got %+v", got)
	}
}

func TestStore_CloseStopsTimer(t *testing.T) {
	t.Parallel()

	s, _, clock := newTestStore(t)
	s.Add("1")
	s.Close()
	clock.Advance(DefaultHighlight)

	if !s.IsRecentlyAdded("1") {
		t.Error("closed store should not clear highlight from a stopped timer")
	}
}
