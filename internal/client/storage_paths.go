package client

import (
	"context"

	"github.com/paperless-community/paperless-go/pkg/paperless"
)

// StoragePathsClient implements paperless.StoragePathsClient.
type StoragePathsClient struct {
	*writableClient[paperless.StoragePath]
}

func newStoragePathsClient(c *Client) *StoragePathsClient {
	return &StoragePathsClient{
		writableClient: newWritableClient(c, paperless.ResourceStoragePaths,
			func(p *paperless.StoragePath) int64 { return p.ID }),
	}
}

// Create creates a storage path after validating the request locally.
func (sc *StoragePathsClient) Create(ctx context.Context, request *paperless.StoragePathCreateRequest) (*paperless.StoragePath, error) {
	return create[paperless.StoragePath](ctx, sc.writableClient, request)
}
