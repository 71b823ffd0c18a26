package paperless

import (
	"context"
	"errors"
	"fmt"
)

// NewCache builds a cache from configuration. A nil config yields the
// bounded in-memory cache with defaults.
func NewCache(ctx context.Context, config *CacheConfig) (Cache, error) {
	if config == nil {
		return NewMemoryCache(0, 0), nil
	}

	switch config.Backend {
	case CacheBackendMemory, "":
		return NewMemoryCache(config.TTL, config.MaxEntries), nil

	case CacheBackendNoOp:
		return NewNoOpCache(), nil

	case CacheBackendNATS:
		return NewNATSCache(ctx, config.NATS, config.TTL)

	case CacheBackendChain:
		if len(config.Layers) == 0 {
			return nil, errors.New("chain cache: at least one layer is required")
		}

		layers := make([]Cache, 0, len(config.Layers))

		for i := range config.Layers {
			layer, err := NewCache(ctx, &config.Layers[i])
			if err != nil {
				for _, built := range layers {
					_ = built.Close()
				}

				return nil, fmt.Errorf("building chain layer %d: %w", i, err)
			}

			layers = append(layers, layer)
		}

		return NewChainCache(layers...), nil

	default:
		return nil, fmt.Errorf("unknown cache backend %q", config.Backend)
	}
}
