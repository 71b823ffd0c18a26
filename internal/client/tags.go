package client

import (
	"context"

	"github.com/paperless-community/paperless-go/pkg/paperless"
)

// TagsClient implements paperless.TagsClient.
type TagsClient struct {
	*writableClient[paperless.Tag]
}

func newTagsClient(c *Client) *TagsClient {
	return &TagsClient{
		writableClient: newWritableClient(c, paperless.ResourceTags,
			func(t *paperless.Tag) int64 { return t.ID }),
	}
}

// Create creates a tag after validating the request locally.
func (tc *TagsClient) Create(ctx context.Context, request *paperless.TagCreateRequest) (*paperless.Tag, error) {
	return create[paperless.Tag](ctx, tc.writableClient, request)
}
