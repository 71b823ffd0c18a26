package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/paperless-community/paperless-go/pkg/paperless"
)

// resourceClient is the generic read side shared by every resource. The
// concrete clients embed it and add their write and sub-endpoint methods.
type resourceClient[T any] struct {
	client     *Client
	descriptor paperless.ResourceDescriptor
	primaryKey func(*T) int64
	fullPerms  atomic.Bool
}

func newResourceClient[T any](c *Client, resource paperless.ResourceType, primaryKey func(*T) int64) *resourceClient[T] {
	descriptor, ok := paperless.Descriptor(resource)
	if !ok {
		panic(fmt.Sprintf("no descriptor registered for resource %q", resource))
	}

	return &resourceClient[T]{
		client:     c,
		descriptor: descriptor,
		primaryKey: primaryKey,
	}
}

// RequestPermissions toggles full_perms on subsequent reads. Ignored for
// resources without object-level permissions.
func (r *resourceClient[T]) RequestPermissions(enabled bool) {
	if r.descriptor.Capabilities.Has(paperless.CapSecurable) {
		r.fullPerms.Store(enabled)
	}
}

// PermissionsRequested reports the current full_perms setting.
func (r *resourceClient[T]) PermissionsRequested() bool {
	return r.fullPerms.Load()
}

func (r *resourceClient[T]) scopedParams(params *paperless.QueryParams) *paperless.QueryParams {
	if params == nil {
		params = paperless.NewQueryParams()
	} else {
		params = params.Clone()
	}

	if r.fullPerms.Load() {
		params.FullPerms = true
	}

	return params
}

// Get fetches one record by primary key.
func (r *resourceClient[T]) Get(ctx context.Context, id int64) (*T, error) {
	response, err := r.client.http.Get(ctx, r.descriptor.ItemURL(id), r.scopedParams(nil).ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting %s %d: %w", r.descriptor.Type, id, err)
	}

	var record T

	err = response.JSON(&record)
	if err != nil {
		return nil, fmt.Errorf("parsing %s %d: %w", r.descriptor.Type, id, err)
	}

	return &record, nil
}

// List fetches one page of the collection.
func (r *resourceClient[T]) List(ctx context.Context, params *paperless.QueryParams) (*paperless.ListResponse[T], error) {
	return r.ListWithPath(ctx, r.descriptor.CollectionPath, params)
}

// ListWithPath fetches one page of an arbitrary collection path. The page
// iterator drives pagination through it.
func (r *resourceClient[T]) ListWithPath(ctx context.Context, path string, params *paperless.QueryParams) (*paperless.ListResponse[T], error) {
	scoped := r.scopedParams(params)

	response, err := r.client.http.Get(ctx, path, scoped.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.descriptor.Type, err)
	}

	var page paperless.ListResponse[T]

	err = response.JSON(&page)
	if err != nil {
		return nil, fmt.Errorf("parsing %s list: %w", r.descriptor.Type, err)
	}

	return &page, nil
}

// Iterate returns a lazy iterator over every matching record.
func (r *resourceClient[T]) Iterate(ctx context.Context, params *paperless.QueryParams) *paperless.PageIterator[T] {
	return paperless.NewPageIterator[T](ctx, r, r.descriptor.CollectionPath, params)
}

// AllIDs fetches the primary keys of every matching record from the "all"
// field of the first page, without paging through the records.
func (r *resourceClient[T]) AllIDs(ctx context.Context, params *paperless.QueryParams) ([]int64, error) {
	if params == nil {
		params = paperless.NewQueryParams()
	} else {
		params = params.Clone()
	}

	params.Page = 1
	params.PageSize = 1

	page, err := r.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return page.All, nil
}

// AsMap fetches the whole collection keyed by primary key.
func (r *resourceClient[T]) AsMap(ctx context.Context) (map[int64]T, error) {
	records, err := r.Iterate(ctx, nil).All()
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]T, len(records))
	for i := range records {
		byID[r.primaryKey(&records[i])] = records[i]
	}

	return byID, nil
}

// writableClient adds the write side for resources that support it.
type writableClient[T any] struct {
	resourceClient[T]
}

func newWritableClient[T any](c *Client, resource paperless.ResourceType, primaryKey func(*T) int64) *writableClient[T] {
	return &writableClient[T]{resourceClient: *newResourceClient[T](c, resource, primaryKey)}
}

// create validates the request and posts it to the collection endpoint.
func create[T any, R interface{ Validate() error }](ctx context.Context, r *writableClient[T], request R) (*T, error) {
	if !r.descriptor.Capabilities.Has(paperless.CapCreate) {
		return nil, fmt.Errorf("creating %s: %w", r.descriptor.Type, paperless.ErrDraftNotSupported)
	}

	err := request.Validate()
	if err != nil {
		return nil, err
	}

	response, err := r.client.http.Post(ctx, r.descriptor.CollectionPath, request)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", r.descriptor.Type, err)
	}

	var record T

	err = response.JSON(&record)
	if err != nil {
		return nil, fmt.Errorf("parsing created %s: %w", r.descriptor.Type, err)
	}

	return &record, nil
}

// Update patches the record with the fields that differ between original and
// modified. When nothing differs it performs no request and reports false.
func (r *writableClient[T]) Update(ctx context.Context, id int64, original, modified *T) (*T, bool, error) {
	if id <= 0 {
		return nil, false, paperless.ErrPrimaryKeyRequired
	}

	patch, err := paperless.Changes(original, modified)
	if err != nil {
		return nil, false, fmt.Errorf("diffing %s %d: %w", r.descriptor.Type, id, err)
	}

	if len(patch) == 0 {
		return modified, false, nil
	}

	response, err := r.client.http.Patch(ctx, r.descriptor.ItemURL(id), patch)
	if err != nil {
		return nil, false, fmt.Errorf("updating %s %d: %w", r.descriptor.Type, id, err)
	}

	var record T

	err = response.JSON(&record)
	if err != nil {
		return nil, false, fmt.Errorf("parsing updated %s: %w", r.descriptor.Type, err)
	}

	return &record, true, nil
}

// UpdateFull replaces the record with a PUT.
func (r *writableClient[T]) UpdateFull(ctx context.Context, id int64, record *T) (*T, error) {
	if id <= 0 {
		return nil, paperless.ErrPrimaryKeyRequired
	}

	payload, err := paperless.WritePayload(record)
	if err != nil {
		return nil, fmt.Errorf("rendering %s %d: %w", r.descriptor.Type, id, err)
	}

	response, err := r.client.http.Put(ctx, r.descriptor.ItemURL(id), payload)
	if err != nil {
		return nil, fmt.Errorf("replacing %s %d: %w", r.descriptor.Type, id, err)
	}

	var updated T

	err = response.JSON(&updated)
	if err != nil {
		return nil, fmt.Errorf("parsing replaced %s: %w", r.descriptor.Type, err)
	}

	return &updated, nil
}

// Delete removes the record. Success is a 204; an already-gone record (404)
// reports false without an error.
func (r *writableClient[T]) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, paperless.ErrPrimaryKeyRequired
	}

	response, err := r.client.http.Delete(ctx, r.descriptor.ItemURL(id))
	if err != nil {
		var apiErr *paperless.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return false, nil
		}

		return false, fmt.Errorf("deleting %s %d: %w", r.descriptor.Type, id, err)
	}

	return response.StatusCode == http.StatusNoContent, nil
}
