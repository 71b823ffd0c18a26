package paperless

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// NATSCache stores entries in a JetStream key-value bucket, letting several
// client processes share one warm cache.
type NATSCache struct {
	conn *nats.Conn
	kv   jetstream.KeyValue
}

// NewNATSCache connects to NATS and opens (or creates) the configured
// bucket. The TTL applies bucket-wide.
func NewNATSCache(ctx context.Context, config *NATSCacheConfig, ttl time.Duration) (*NATSCache, error) {
	if config == nil || config.URL == "" {
		return nil, errors.New("nats cache: URL is required")
	}

	bucket := config.Bucket
	if bucket == "" {
		bucket = "paperless-cache"
	}

	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	var options []nats.Option
	if config.CredsFile != "" {
		options = append(options, nats.UserCredentials(config.CredsFile))
	}

	conn, err := nats.Connect(config.URL, options...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("opening JetStream: %w", err)
	}

	kv, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket: bucket,
		TTL:    ttl,
	})
	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("opening key-value bucket %q: %w", bucket, err)
	}

	return &NATSCache{conn: conn, kv: kv}, nil
}

// Get returns the stored value; any backend error reads as a miss.
func (c *NATSCache) Get(ctx context.Context, key string) ([]byte, bool) {
	entry, err := c.kv.Get(ctx, key)
	if err != nil {
		return nil, false
	}

	return entry.Value(), true
}

// Set stores a value under key.
func (c *NATSCache) Set(ctx context.Context, key string, value []byte) error {
	_, err := c.kv.Put(ctx, key, value)
	if err != nil {
		return fmt.Errorf("writing cache key %q: %w", key, err)
	}

	return nil
}

// Delete removes one key.
func (c *NATSCache) Delete(ctx context.Context, key string) error {
	err := c.kv.Purge(ctx, key)
	if err != nil && !errors.Is(err, jetstream.ErrKeyNotFound) {
		return fmt.Errorf("purging cache key %q: %w", key, err)
	}

	return nil
}

// Clear removes every key in the bucket.
func (c *NATSCache) Clear(ctx context.Context) error {
	keys, err := c.kv.Keys(ctx)
	if err != nil {
		if errors.Is(err, jetstream.ErrNoKeysFound) {
			return nil
		}

		return fmt.Errorf("listing cache keys: %w", err)
	}

	for _, key := range keys {
		err = c.kv.Purge(ctx, key)
		if err != nil && !errors.Is(err, jetstream.ErrKeyNotFound) {
			return fmt.Errorf("purging cache key %q: %w", key, err)
		}
	}

	return nil
}

// Close drains the NATS connection.
func (c *NATSCache) Close() error {
	c.conn.Close()

	return nil
}
