package client

import (
	"context"

	"github.com/paperless-community/paperless-go/pkg/paperless"
)

// CorrespondentsClient implements paperless.CorrespondentsClient.
type CorrespondentsClient struct {
	*writableClient[paperless.Correspondent]
}

func newCorrespondentsClient(c *Client) *CorrespondentsClient {
	return &CorrespondentsClient{
		writableClient: newWritableClient(c, paperless.ResourceCorrespondents,
			func(r *paperless.Correspondent) int64 { return r.ID }),
	}
}

// Create creates a correspondent after validating the request locally.
func (cc *CorrespondentsClient) Create(ctx context.Context, request *paperless.CorrespondentCreateRequest) (*paperless.Correspondent, error) {
	return create[paperless.Correspondent](ctx, cc.writableClient, request)
}
