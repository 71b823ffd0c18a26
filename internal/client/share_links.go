package client

import (
	"context"

	"github.com/paperless-community/paperless-go/pkg/paperless"
)

// ShareLinksClient implements paperless.ShareLinksClient.
type ShareLinksClient struct {
	*writableClient[paperless.ShareLink]
}

func newShareLinksClient(c *Client) *ShareLinksClient {
	return &ShareLinksClient{
		writableClient: newWritableClient(c, paperless.ResourceShareLinks,
			func(l *paperless.ShareLink) int64 { return l.ID }),
	}
}

// Create creates a share link after validating the request locally.
func (sc *ShareLinksClient) Create(ctx context.Context, request *paperless.ShareLinkCreateRequest) (*paperless.ShareLink, error) {
	return create[paperless.ShareLink](ctx, sc.writableClient, request)
}
