// Analogue Memory - Nostalgia Catalog and Personal Collection Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/analoguememory

package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/tomtom215/analoguememory/internal/metrics"
)

const defaultCleanupInterval = 5 * time.Minute

// Entry represents a cached value with expiration
type Entry[V any] struct {
	Value     V
	ExpiresAt time.Time
}

// counters tracks cache activity.
type counters struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// Cache is a thread-safe in-memory cache with a single TTL for all entries.
type Cache[V any] struct {
	name string
	ttl  time.Duration
	now  func() time.Time

	mu      sync.RWMutex
	entries map[string]Entry[V]
	stats   counters

	stop     chan struct{}
	stopOnce sync.Once
}

// New creates a cache whose entries live for ttl. name labels the
// cache_hits_total and cache_misses_total metrics.
//
// A background goroutine removes expired entries every five minutes until
// Close is called.
//
//	responses := cache.New[[]byte]("upstream", 30*time.Second)
//	defer responses.Close()
func New[V any](name string, ttl time.Duration) *Cache[V] {
	c := &Cache[V]{
		name:    name,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]Entry[V]),
		stop:    make(chan struct{}),
	}
	c.stats.LastCleanup = c.now()

	go c.cleanupLoop(defaultCleanupInterval)
	return c
}


// Get returns the value for key if present and not expired. Expired entries
// are removed and counted as misses.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		c.record(false, 0)
		return zero, false
	}

	if c.now().After(entry.ExpiresAt) {
		c.mu.Lock()
		if cur, still := c.entries[key]; still && cur.ExpiresAt.Equal(entry.ExpiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		c.record(false, 1)
		return zero, false
	}

	c.record(true, 0)
	return entry.Value, true
}

// Set stores value under key with the default TTL.
func (c *Cache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value under key with a custom TTL.
func (c *Cache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = Entry[V]{Value: value, ExpiresAt: c.now().Add(ttl)}
	c.stats.TotalKeys = int64(len(c.entries))
}

// Delete removes key.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		delete(c.entries, key)
		c.stats.Evictions++
		c.stats.TotalKeys = int64(len(c.entries))
	}
}

// DeletePrefix removes every key starting with prefix and returns how many
// were removed. The API client uses it to invalidate "/collection" after a
// mutation.
func (c *Cache[V]) DeletePrefix(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
			n++
		}
	}
	c.stats.Evictions += int64(n)
	c.stats.TotalKeys = int64(len(c.entries))
	return n
}

// snapshot returns a copy of the counters.
func (c *Cache[V]) snapshot() counters {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// Close stops the background cleanup goroutine. Safe to call more than once.
func (c *Cache[V]) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *Cache[V]) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

// cleanup removes all expired entries
func (c *Cache[V]) cleanup() {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
			c.stats.Evictions++
		}
	}
	c.stats.TotalKeys = int64(len(c.entries))
	c.stats.LastCleanup = now
}

func (c *Cache[V]) record(hit bool, evictions int64) {
	c.mu.Lock()
	if hit {
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
	c.stats.Evictions += evictions
	c.stats.TotalKeys = int64(len(c.entries))
	c.mu.Unlock()

	metrics.RecordCacheLookup(c.name, hit)
}
