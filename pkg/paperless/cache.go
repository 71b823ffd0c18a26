package paperless

import (
	"context"
	"sync"
	"time"
)

// Cache is a byte-oriented cache the client uses for custom-field
// definitions. Implementations must be safe for concurrent use. Lookups never
// fail the caller; a backend error reads as a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Close() error
}

// CacheBackend names a cache implementation.
type CacheBackend string

const (
	CacheBackendMemory CacheBackend = "memory"
	CacheBackendNATS   CacheBackend = "nats"
	CacheBackendNoOp   CacheBackend = "noop"
	CacheBackendChain  CacheBackend = "chain"
)

const (
	defaultCacheTTL        = 5 * time.Minute
	defaultCacheMaxEntries = 1024
)

// NATSCacheConfig configures the NATS JetStream key-value backend.
type NATSCacheConfig struct {
	// URL is the NATS server URL, e.g. "nats://127.0.0.1:4222".
	URL string

	// Bucket is the key-value bucket name. Created when absent.
	Bucket string

	// CredsFile optionally points at a NATS credentials file.
	CredsFile string
}

// CacheConfig selects and tunes a cache backend.
type CacheConfig struct {
	Backend CacheBackend

	// TTL bounds entry lifetime. Zero means five minutes.
	TTL time.Duration

	// MaxEntries bounds the memory backend. Zero means 1024.
	MaxEntries int

	// NATS configures the nats backend.
	NATS *NATSCacheConfig

	// Layers configures the chain backend, fastest first.
	Layers []CacheConfig
}

type memoryEntry struct {
	value    []byte
	expires  time.Time
	lastUsed time.Time
}

// MemoryCache is a bounded in-process cache with per-entry TTL. When full it
// evicts the least recently used entry.
type MemoryCache struct {
	mu         sync.Mutex
	entries    map[string]*memoryEntry
	ttl        time.Duration
	maxEntries int
}

// NewMemoryCache creates a memory cache. Non-positive arguments fall back to
// the defaults.
func NewMemoryCache(ttl time.Duration, maxEntries int) *MemoryCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	if maxEntries <= 0 {
		maxEntries = defaultCacheMaxEntries
	}

	return &MemoryCache{
		entries:    make(map[string]*memoryEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
	}
}

// Get returns the cached value when present and unexpired.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	if time.Now().After(entry.expires) {
		delete(c.entries, key)

		return nil, false
	}

	entry.lastUsed = time.Now()

	return entry.value, true
}

// Set stores a value, evicting the least recently used entry when full.
func (c *MemoryCache) Set(_ context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.maxEntries {
		c.evictOldest()
	}

	now := time.Now()
	c.entries[key] = &memoryEntry{
		value:    value,
		expires:  now.Add(c.ttl),
		lastUsed: now,
	}

	return nil
}

func (c *MemoryCache) evictOldest() {
	var (
		oldestKey  string
		oldestTime time.Time
	)

	for key, entry := range c.entries {
		if oldestKey == "" || entry.lastUsed.Before(oldestTime) {
			oldestKey = key
			oldestTime = entry.lastUsed
		}
	}

	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

// Delete removes one entry.
func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)

	return nil
}

// Clear removes every entry.
func (c *MemoryCache) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*memoryEntry)

	return nil
}

// Close is a no-op for the memory backend.
func (c *MemoryCache) Close() error {
	return nil
}

// Len reports the number of live entries.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// NoOpCache never stores anything. It backs deployments that want every
// lookup to hit the server.
type NoOpCache struct{}

// NewNoOpCache creates a no-op cache.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(context.Context, string) ([]byte, bool)   { return nil, false }
func (c *NoOpCache) Set(context.Context, string, []byte) error    { return nil }
func (c *NoOpCache) Delete(context.Context, string) error         { return nil }
func (c *NoOpCache) Clear(context.Context) error                  { return nil }
func (c *NoOpCache) Close() error                                 { return nil }

// ChainCache layers caches fastest first. Reads stop at the first hit and
// backfill the faster layers; writes go to every layer.
type ChainCache struct {
	layers []Cache
}

// NewChainCache creates a chain over the given layers.
func NewChainCache(layers ...Cache) *ChainCache {
	return &ChainCache{layers: layers}
}

// Get returns the first hit across the layers and backfills earlier layers.
func (c *ChainCache) Get(ctx context.Context, key string) ([]byte, bool) {
	for i, layer := range c.layers {
		value, ok := layer.Get(ctx, key)
		if !ok {
			continue
		}

		for j := 0; j < i; j++ {
			_ = c.layers[j].Set(ctx, key, value)
		}

		return value, true
	}

	return nil, false
}

// Set writes to every layer, returning the first error after trying all.
func (c *ChainCache) Set(ctx context.Context, key string, value []byte) error {
	var firstErr error

	for _, layer := range c.layers {
		if err := layer.Set(ctx, key, value); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// Delete removes the key from every layer.
func (c *ChainCache) Delete(ctx context.Context, key string) error {
	var firstErr error

	for _, layer := range c.layers {
		if err := layer.Delete(ctx, key); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// Clear empties every layer.
func (c *ChainCache) Clear(ctx context.Context) error {
	var firstErr error

	for _, layer := range c.layers {
		if err := layer.Clear(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// Close closes every layer.
func (c *ChainCache) Close() error {
	var firstErr error

	for _, layer := range c.layers {
		if err := layer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
