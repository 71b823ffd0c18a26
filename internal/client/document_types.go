package client

import (
	"context"

	"github.com/paperless-community/paperless-go/pkg/paperless"
)

// DocumentTypesClient implements paperless.DocumentTypesClient.
type DocumentTypesClient struct {
	*writableClient[paperless.DocumentType]
}

func newDocumentTypesClient(c *Client) *DocumentTypesClient {
	return &DocumentTypesClient{
		writableClient: newWritableClient(c, paperless.ResourceDocumentTypes,
			func(t *paperless.DocumentType) int64 { return t.ID }),
	}
}

// Create creates a document type after validating the request locally.
func (dc *DocumentTypesClient) Create(ctx context.Context, request *paperless.DocumentTypeCreateRequest) (*paperless.DocumentType, error) {
	return create[paperless.DocumentType](ctx, dc.writableClient, request)
}
