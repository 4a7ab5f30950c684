package cloudiq

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryParams represents query parameters for list operations. CloudIQ
// expects PascalCase parameter names on the wire.
type QueryParams struct {
	Page     int
	PageSize int
	Search   string
	OrderBy  string
	Filters  map[string][]string
}

// NewQueryParams creates a new QueryParams instance.
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
func (q *QueryParams) WithPageSize(pageSize int) *QueryParams {
	q.PageSize = pageSize

	return q
}

// WithSearch sets the search term.
func (q *QueryParams) WithSearch(search string) *QueryParams {
	q.Search = search

	return q
}

// WithOrderBy sets the ordering.
func (q *QueryParams) WithOrderBy(orderBy string) *QueryParams {
	q.OrderBy = orderBy

	return q
}

// WithFilter appends values to a filter parameter.
func (q *QueryParams) WithFilter(key string, values ...string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[key] = append(q.Filters[key], values...)

	return q
}

// ToValues converts the parameters to url.Values.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q.Page > 0 {
		values.Set("Page", strconv.Itoa(q.Page))
	}

	if q.PageSize > 0 {
		values.Set("PageSize", strconv.Itoa(q.PageSize))
	}

	if q.Search != "" {
		values.Set("Search", q.Search)
	}

	if q.OrderBy != "" {
		values.Set("OrderBy", q.OrderBy)
	}

	for key, filterValues := range q.Filters {
		if len(filterValues) > 0 {
			values.Set(key, strings.Join(filterValues, ","))
		}
	}

	return values
}
