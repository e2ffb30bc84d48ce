package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is the process-wide cache used by the data repositories. Every
// repository receives an instance through its constructor; nothing reaches a
// package-level singleton, so tests can substitute a fake.
type Cache interface {
	// Get returns the value stored under key, or false if the key is absent
	// or its entry has expired.
	Get(key string) (interface{}, bool)
	// Set stores value under key with a per-key time-to-live.
	Set(key string, value interface{}, ttl time.Duration)
	// Remove drops the entry for key. Removing an absent key is a no-op.
	Remove(key string)
}

// Memory is an in-process Cache backed by go-cache.
type Memory struct {
	store *gocache.Cache
}

// NewMemory creates an in-memory cache. Expired entries are evicted lazily on
// Get and swept every cleanupInterval.
func NewMemory(cleanupInterval time.Duration) *Memory {
	return &Memory{store: gocache.New(gocache.NoExpiration, cleanupInterval)}
}

func (m *Memory) Get(key string) (interface{}, bool) {
	return m.store.Get(key)
}

func (m *Memory) Set(key string, value interface{}, ttl time.Duration) {
	m.store.Set(key, value, ttl)
}

func (m *Memory) Remove(key string) {
	m.store.Delete(key)
}
