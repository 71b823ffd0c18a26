package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/paperless-community/paperless-go/pkg/paperless"
)

const customFieldsCacheKey = "custom_fields"

// CustomFieldsClient implements paperless.CustomFieldsClient.
type CustomFieldsClient struct {
	*writableClient[paperless.CustomField]
}

func newCustomFieldsClient(c *Client) *CustomFieldsClient {
	return &CustomFieldsClient{
		writableClient: newWritableClient(c, paperless.ResourceCustomFields,
			func(f *paperless.CustomField) int64 { return f.ID }),
	}
}

// Create creates a field definition after validating the request locally.
// The cached definitions are invalidated.
func (fc *CustomFieldsClient) Create(ctx context.Context, request *paperless.CustomFieldCreateRequest) (*paperless.CustomField, error) {
	field, err := create[paperless.CustomField](ctx, fc.writableClient, request)
	if err != nil {
		return nil, err
	}

	_ = fc.client.cache.Delete(ctx, customFieldsCacheKey)

	return field, nil
}

// Update patches a field definition and invalidates the cached definitions
// when a request was sent.
func (fc *CustomFieldsClient) Update(ctx context.Context, id int64, original, modified *paperless.CustomField) (*paperless.CustomField, bool, error) {
	field, changed, err := fc.writableClient.Update(ctx, id, original, modified)
	if err != nil {
		return nil, false, err
	}

	if changed {
		_ = fc.client.cache.Delete(ctx, customFieldsCacheKey)
	}

	return field, changed, nil
}

// Delete removes a field definition and invalidates the cached definitions.
func (fc *CustomFieldsClient) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := fc.writableClient.Delete(ctx, id)
	if err != nil {
		return false, err
	}

	if deleted {
		_ = fc.client.cache.Delete(ctx, customFieldsCacheKey)
	}

	return deleted, nil
}

// Definitions returns every field definition keyed by id. Results are served
// from the client's cache while warm; a cold cache triggers one full listing.
func (fc *CustomFieldsClient) Definitions(ctx context.Context) (map[int64]paperless.CustomField, error) {
	if cached, ok := fc.client.cache.Get(ctx, customFieldsCacheKey); ok {
		var definitions map[int64]paperless.CustomField
		if err := json.Unmarshal(cached, &definitions); err == nil {
			return definitions, nil
		}

		_ = fc.client.cache.Delete(ctx, customFieldsCacheKey)
	}

	definitions, err := fc.AsMap(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing custom field definitions: %w", err)
	}

	if encoded, err := json.Marshal(definitions); err == nil {
		_ = fc.client.cache.Set(ctx, customFieldsCacheKey, encoded)
	}

	return definitions, nil
}
