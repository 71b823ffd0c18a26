package paperless_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperless-community/paperless-go/pkg/paperless"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := paperless.NewMemoryCache(time.Minute, 10)

	_, ok := cache.Get(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "key", []byte("value")))

	value, ok := cache.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, []byte("value"), value)

	require.NoError(t, cache.Delete(ctx, "key"))

	_, ok = cache.Get(ctx, "key")
	assert.False(t, ok)
}

func TestMemoryCacheExpiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := paperless.NewMemoryCache(10*time.Millisecond, 10)

	require.NoError(t, cache.Set(ctx, "key", []byte("value")))
	time.Sleep(25 * time.Millisecond)

	_, ok := cache.Get(ctx, "key")
	assert.False(t, ok)
}

func TestMemoryCacheEviction(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := paperless.NewMemoryCache(time.Minute, 2)

	require.NoError(t, cache.Set(ctx, "a", []byte("1")))
	require.NoError(t, cache.Set(ctx, "b", []byte("2")))

	// Touch "a" so "b" is the eviction candidate.
	_, ok := cache.Get(ctx, "a")
	require.True(t, ok)

	require.NoError(t, cache.Set(ctx, "c", []byte("3")))
	assert.Equal(t, 2, cache.Len())

	_, ok = cache.Get(ctx, "a")
	assert.True(t, ok)

	_, ok = cache.Get(ctx, "b")
	assert.False(t, ok)
}

func TestMemoryCacheClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := paperless.NewMemoryCache(time.Minute, 10)

	require.NoError(t, cache.Set(ctx, "a", []byte("1")))
	require.NoError(t, cache.Set(ctx, "b", []byte("2")))
	require.NoError(t, cache.Clear(ctx))
	assert.Equal(t, 0, cache.Len())
}

func TestNoOpCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := paperless.NewNoOpCache()

	require.NoError(t, cache.Set(ctx, "key", []byte("value")))

	_, ok := cache.Get(ctx, "key")
	assert.False(t, ok)
	assert.NoError(t, cache.Close())
}

func TestChainCacheBackfillsFasterLayers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fast := paperless.NewMemoryCache(time.Minute, 10)
	slow := paperless.NewMemoryCache(time.Minute, 10)
	chain := paperless.NewChainCache(fast, slow)

	// Seed only the slow layer; a chain read should promote the entry.
	require.NoError(t, slow.Set(ctx, "key", []byte("value")))

	value, ok := chain.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, []byte("value"), value)

	promoted, ok := fast.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, []byte("value"), promoted)
}

func TestChainCacheWritesAllLayers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fast := paperless.NewMemoryCache(time.Minute, 10)
	slow := paperless.NewMemoryCache(time.Minute, 10)
	chain := paperless.NewChainCache(fast, slow)

	require.NoError(t, chain.Set(ctx, "key", []byte("value")))

	_, ok := fast.Get(ctx, "key")
	assert.True(t, ok)

	_, ok = slow.Get(ctx, "key")
	assert.True(t, ok)

	require.NoError(t, chain.Delete(ctx, "key"))

	_, ok = slow.Get(ctx, "key")
	assert.False(t, ok)
}

func TestNewCacheFactory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("nil config yields memory cache", func(t *testing.T) {
		t.Parallel()

		cache, err := paperless.NewCache(ctx, nil)
		require.NoError(t, err)

		_, ok := cache.(*paperless.MemoryCache)
		assert.True(t, ok)
	})

	t.Run("noop backend", func(t *testing.T) {
		t.Parallel()

		cache, err := paperless.NewCache(ctx, &paperless.CacheConfig{Backend: paperless.CacheBackendNoOp})
		require.NoError(t, err)

		_, ok := cache.(*paperless.NoOpCache)
		assert.True(t, ok)
	})

	t.Run("chain backend", func(t *testing.T) {
		t.Parallel()

		cache, err := paperless.NewCache(ctx, &paperless.CacheConfig{
			Backend: paperless.CacheBackendChain,
			Layers: []paperless.CacheConfig{
				{Backend: paperless.CacheBackendMemory},
				{Backend: paperless.CacheBackendNoOp},
			},
		})
		require.NoError(t, err)

		_, ok := cache.(*paperless.ChainCache)
		assert.True(t, ok)
	})

	t.Run("chain without layers fails", func(t *testing.T) {
		t.Parallel()

		_, err := paperless.NewCache(ctx, &paperless.CacheConfig{Backend: paperless.CacheBackendChain})
		require.Error(t, err)
	})

	t.Run("unknown backend fails", func(t *testing.T) {
		t.Parallel()

		_, err := paperless.NewCache(ctx, &paperless.CacheConfig{Backend: "redis"})
		require.Error(t, err)
	})
}
