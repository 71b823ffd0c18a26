package paperless

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryParams describes the query portion of a collection request.
type QueryParams struct {
	// Page is the 1-based page number. Zero means server default.
	Page int

	// PageSize is the number of items per page. Zero means server default.
	PageSize int

	// Ordering names the sort field; prefix with "-" for descending.
	Ordering string

	// Query runs a full-text search over the collection.
	Query string

	// MoreLikeID asks for documents similar to the given document.
	MoreLikeID int64

	// FullPerms requests the object-level permission table on each record.
	FullPerms bool

	// Filters holds arbitrary filter parameters. Multi-valued filters whose
	// name ends in "__in" are comma-joined into a single value.
	Filters map[string][]string
}

// NewQueryParams creates an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string][]string),
	}
}

// WithPage sets the page number.
func (q *QueryParams) WithPage(page int) *QueryParams {
	q.Page = page

	return q
}

// WithPageSize sets the page size.
func (q *QueryParams) WithPageSize(size int) *QueryParams {
	q.PageSize = size

	return q
}

// WithOrdering sets the sort field.
func (q *QueryParams) WithOrdering(field string) *QueryParams {
	q.Ordering = field

	return q
}

// WithQuery sets the full-text search query.
func (q *QueryParams) WithQuery(query string) *QueryParams {
	q.Query = query

	return q
}

// WithFullPerms requests permission tables on results.
func (q *QueryParams) WithFullPerms() *QueryParams {
	q.FullPerms = true

	return q
}

// WithFilter appends values to a named filter.
func (q *QueryParams) WithFilter(name string, values ...string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[name] = append(q.Filters[name], values...)

	return q
}

// ToValues converts the parameters to url.Values for transmission.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}

	if q.PageSize > 0 {
		values.Set("page_size", strconv.Itoa(q.PageSize))
	}

	if q.Ordering != "" {
		values.Set("ordering", q.Ordering)
	}

	if q.Query != "" {
		values.Set("query", q.Query)
	}

	if q.MoreLikeID > 0 {
		values.Set("more_like_id", strconv.FormatInt(q.MoreLikeID, 10))
	}

	if q.FullPerms {
		values.Set("full_perms", "true")
	}

	for name, filterValues := range q.Filters {
		if strings.HasSuffix(name, "__in") || len(filterValues) > 1 {
			values.Set(name, strings.Join(filterValues, ","))
		} else if len(filterValues) == 1 {
			values.Set(name, filterValues[0])
		}
	}

	return values
}

// Clone returns a deep copy. Iterators clone their params so advancing a page
// never mutates the caller's value.
func (q *QueryParams) Clone() *QueryParams {
	clone := *q
	clone.Filters = make(map[string][]string, len(q.Filters))

	for name, filterValues := range q.Filters {
		clone.Filters[name] = append([]string(nil), filterValues...)
	}

	return &clone
}
