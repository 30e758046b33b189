package memory

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/pwforge/internal/core/ports/driven"
)

// Ensure RangeCache implements the interface.
var _ driven.RangeCache = (*RangeCache)(nil)

type rangeEntry struct {
	body      string
	fetchedAt time.Time
}

// RangeCache is an in-memory implementation of driven.RangeCache.
// Entries older than the TTL are treated as absent.
type RangeCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]rangeEntry
}

// NewRangeCache creates a new in-memory range cache.
func NewRangeCache(ttl time.Duration) *RangeCache {
	return &RangeCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]rangeEntry),
	}
}

// Get returns the cached body for a prefix.
func (c *RangeCache) Get(_ context.Context, prefix string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[prefix]
	if !ok || c.now().Sub(entry.fetchedAt) > c.ttl {
		return "", false, nil
	}
	return entry.body, true, nil
}

// Put stores the body for a prefix.
func (c *RangeCache) Put(_ context.Context, prefix, body string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[prefix] = rangeEntry{body: body, fetchedAt: c.now()}
	return nil
}

// Len returns the number of stored entries, expired or not.
func (c *RangeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
