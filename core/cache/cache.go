// Package cache memoizes expensive quote and coordinate lookups.
// Entries expire by wall-clock age only; there is no LRU pressure and
// no single-flight dedup — concurrent misses may each recompute.
package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"tripcost/core/types"
)

// DefaultTTL is how long an entry stays fresh
const DefaultTTL = 24 * time.Hour

// Entry is one cached value with its provenance
type Entry struct {
	// Value is the JSON-encoded cached value
	Value json.RawMessage `json:"value"`

	// Source records whether the value was api-backed or estimated
	Source types.PriceSource `json:"source"`

	// CachedAt is when the entry was stored
	CachedAt time.Time `json:"cached_at"`
}

// Cache is a TTL key-value store. Implementations must tolerate
// concurrent reads and writes; atomic put is sufficient.
type Cache interface {
	// Get retrieves a fresh entry, reporting a miss when absent or expired
	Get(ctx context.Context, key string) (Entry, bool)

	// Put stores a value with its provenance, overwriting any entry
	Put(ctx context.Context, key string, value interface{}, source types.PriceSource) error
}

// Lookup retrieves and decodes a cached value of type T
func Lookup[T any](ctx context.Context, c Cache, key string) (T, types.PriceSource, bool) {
	var zero T
	entry, ok := c.Get(ctx, key)
	if !ok {
		return zero, "", false
	}
	var value T
	if err := json.Unmarshal(entry.Value, &value); err != nil {
		return zero, "", false
	}
	return value, entry.Source, true
}

// Memory is an in-process TTL cache
type Memory struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	entry  Entry
	expiry time.Time
}

// NewMemory creates an in-memory cache with the given TTL
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get retrieves a fresh entry
func (m *Memory) Get(_ context.Context, key string) (Entry, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return Entry{}, false
	}
	if m.now().After(e.expiry) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return Entry{}, false
	}
	return e.entry, true
}

// Put stores a value
func (m *Memory) Put(_ context.Context, key string, value interface{}, source types.PriceSource) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	now := m.now()
	m.mu.Lock()
	m.entries[key] = memoryEntry{
		entry:  Entry{Value: data, Source: source, CachedAt: now},
		expiry: now.Add(m.ttl),
	}
	m.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, expired ones included
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// SetClock overrides the clock, for tests
func (m *Memory) SetClock(now func() time.Time) {
	m.mu.Lock()
	m.now = now
	m.mu.Unlock()
}
