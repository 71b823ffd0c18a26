package paperless

import (
	"context"
	"fmt"
)

// DefaultPageSize is requested when the caller does not pick a page size.
const DefaultPageSize = 150

// PaginationClient abstracts the list call the iterator drives. The concrete
// resource clients implement it over the shared HTTP session.
type PaginationClient[T any] interface {
	ListWithPath(ctx context.Context, path string, params *QueryParams) (*ListResponse[T], error)
}

// PageIterator walks a paginated collection lazily: page N is fully received
// before page N+1 is requested, and items keep server order.
type PageIterator[T any] struct {
	ctx    context.Context
	client PaginationClient[T]
	path   string
	params *QueryParams

	current  *Page[T]
	nextPage int
	index    int
	fetchErr error
	done     bool
}

// NewPageIterator creates an iterator over the collection at path. A nil
// params starts at page 1 with DefaultPageSize.
func NewPageIterator[T any](ctx context.Context, client PaginationClient[T], path string, params *QueryParams) *PageIterator[T] {
	if params == nil {
		params = NewQueryParams()
	} else {
		params = params.Clone()
	}

	if params.Page <= 0 {
		params.Page = 1
	}

	if params.PageSize <= 0 {
		params.PageSize = DefaultPageSize
	}

	return &PageIterator[T]{
		ctx:      ctx,
		client:   client,
		path:     path,
		params:   params,
		nextPage: params.Page,
	}
}

func (it *PageIterator[T]) fetch() {
	it.params.Page = it.nextPage

	response, err := it.client.ListWithPath(it.ctx, it.path, it.params)
	if err != nil {
		it.fetchErr = err
		it.done = true

		return
	}

	it.current = &Page[T]{
		ListResponse: *response,
		CurrentPage:  it.nextPage,
		PageSize:     it.params.PageSize,
	}
	it.index = 0
	it.nextPage++
}

// HasNext reports whether another item is available. It may fetch the next
// page; a fetch failure is reported by the following Next call.
func (it *PageIterator[T]) HasNext() bool {
	if it.fetchErr != nil {
		return true
	}

	if it.done {
		return false
	}

	if it.current == nil {
		it.fetch()

		return it.HasNext()
	}

	if it.index < len(it.current.Results) {
		return true
	}

	if !it.current.HasNextPage() {
		it.done = true

		return false
	}

	it.fetch()

	return it.HasNext()
}

// Next returns the next item in order.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	if !it.HasNext() {
		if it.fetchErr != nil {
			err := it.fetchErr
			it.fetchErr = nil

			return zero, err
		}

		return zero, fmt.Errorf("iterating %s: no more items", it.path)
	}

	if it.fetchErr != nil {
		err := it.fetchErr
		it.fetchErr = nil

		return zero, err
	}

	item := it.current.Results[it.index]
	it.index++

	return item, nil
}

// NextPage fetches and returns the next whole page, or nil when exhausted.
func (it *PageIterator[T]) NextPage() (*Page[T], error) {
	if it.done && it.fetchErr == nil {
		return nil, nil
	}

	if it.current != nil && !it.current.HasNextPage() {
		it.done = true

		return nil, nil
	}

	it.fetch()

	if it.fetchErr != nil {
		err := it.fetchErr
		it.fetchErr = nil

		return nil, err
	}

	it.index = len(it.current.Results)

	if !it.current.HasNextPage() {
		it.done = true
	}

	return it.current, nil
}

// All drains the iterator and returns every remaining item.
func (it *PageIterator[T]) All() ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

// ForEach applies fn to every remaining item, stopping on the first error.
func (it *PageIterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

// PaginationOptions tunes bulk page fetching.
type PaginationOptions struct {
	// PageSize overrides DefaultPageSize.
	PageSize int

	// MaxPages stops fetching after this many pages. Zero means unbounded.
	MaxPages int
}

// FetchAllPages collects every item across all pages of the collection.
func FetchAllPages[T any](ctx context.Context, client PaginationClient[T], path string, params *QueryParams, options *PaginationOptions) ([]T, error) {
	if params == nil {
		params = NewQueryParams()
	}

	if options != nil && options.PageSize > 0 {
		params = params.Clone()
		params.PageSize = options.PageSize
	}

	iterator := NewPageIterator(ctx, client, path, params)

	var items []T

	pages := 0

	for {
		page, err := iterator.NextPage()
		if err != nil {
			return nil, err
		}

		if page == nil {
			return items, nil
		}

		items = append(items, page.Results...)
		pages++

		if options != nil && options.MaxPages > 0 && pages >= options.MaxPages {
			return items, nil
		}
	}
}

// PageResult carries one streamed page, or the error that ended the stream.
type PageResult[T any] struct {
	Page  *Page[T]
	Items []T
	Err   error
}

// StreamPages fetches pages in a goroutine and delivers them on a channel.
// Cancelling ctx stops the stream; the channel is closed when iteration ends.
func StreamPages[T any](ctx context.Context, client PaginationClient[T], path string, params *QueryParams, options *PaginationOptions) <-chan PageResult[T] {
	results := make(chan PageResult[T])

	go func() {
		defer close(results)

		if options != nil && options.PageSize > 0 {
			if params == nil {
				params = NewQueryParams()
			} else {
				params = params.Clone()
			}

			params.PageSize = options.PageSize
		}

		iterator := NewPageIterator(ctx, client, path, params)
		pages := 0

		for {
			page, err := iterator.NextPage()
			if err != nil {
				select {
				case results <- PageResult[T]{Err: err}:
				case <-ctx.Done():
				}

				return
			}

			if page == nil {
				return
			}

			select {
			case results <- PageResult[T]{Page: page, Items: page.Results}:
			case <-ctx.Done():
				return
			}

			pages++

			if options != nil && options.MaxPages > 0 && pages >= options.MaxPages {
				return
			}
		}
	}()

	return results
}
