package client

import (
	"github.com/paperless-community/paperless-go/pkg/paperless"
)

// SavedViewsClient implements paperless.SavedViewsClient. Views are created
// in the web UI; the API offers reads and deletion.
type SavedViewsClient struct {
	*writableClient[paperless.SavedView]
}

func newSavedViewsClient(c *Client) *SavedViewsClient {
	return &SavedViewsClient{
		writableClient: newWritableClient(c, paperless.ResourceSavedViews,
			func(v *paperless.SavedView) int64 { return v.ID }),
	}
}
