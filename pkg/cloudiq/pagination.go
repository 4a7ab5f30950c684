package cloudiq

import (
	"context"

	"github.com/fivetwenty-io/cloudiq/internal/constants"
)

// ListPageFunc fetches one page of a collection. Any resource client List
// method can be adapted with a closure.
type ListPageFunc[T any] func(ctx context.Context, params *QueryParams) (*ListResponse[T], error)

// PaginationOptions controls page fetching behavior.
type PaginationOptions struct {
	// PageSize is the number of items per page. Zero uses the params'
	// page size, falling back to the default.
	PageSize int

	// MaxPages caps the number of pages fetched. Zero uses the default cap.
	MaxPages int
}

// PageResult is one page delivered by StreamPages.
type PageResult[T any] struct {
	Items []T
	Page  int
	Err   error
}

// PageIterator iterates over a paginated collection, fetching pages lazily.
// CloudIQ carries no next-page link, so iteration stops when a page comes
// back short, empty, or the reported total has been consumed.
type PageIterator[T any] struct {
	ctx      context.Context
	fetch    ListPageFunc[T]
	params   *QueryParams
	pageSize int
	page     int
	buffer   []T
	index    int
	fetched  int
	total    int
	done     bool
	err      error
}

// NewPageIterator creates an iterator over the collection served by fetch.
// The params' Page and PageSize seed the iteration when set.
func NewPageIterator[T any](ctx context.Context, fetch ListPageFunc[T], params *QueryParams) *PageIterator[T] {
	page := 1
	pageSize := constants.DefaultPageSize

	if params != nil {
		if params.Page > 0 {
			page = params.Page
		}

		if params.PageSize > 0 {
			pageSize = params.PageSize
		}
	}

	return &PageIterator[T]{
		ctx:      ctx,
		fetch:    fetch,
		params:   params,
		pageSize: pageSize,
		page:     page,
		total:    -1,
	}
}

// HasNext reports whether another item is available, fetching the next page
// when the buffer is exhausted.
func (it *PageIterator[T]) HasNext() bool {
	if it.index < len(it.buffer) {
		return true
	}

	if it.err != nil {
		// Surface the error from the following Next call.
		return true
	}

	if it.done {
		return false
	}

	if err := it.fetchPage(); err != nil {
		it.err = err

		return true
	}

	return it.index < len(it.buffer)
}

// Next returns the next item. It returns ErrNoMoreItems once the collection
// is exhausted.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	if it.err != nil {
		err := it.err
		it.err = nil

		return zero, err
	}

	if it.index >= len(it.buffer) {
		if it.done {
			return zero, ErrNoMoreItems
		}

		if err := it.fetchPage(); err != nil {
			return zero, err
		}

		if it.index >= len(it.buffer) {
			return zero, ErrNoMoreItems
		}
	}

	item := it.buffer[it.index]
	it.index++

	return item, nil
}

// All drains the iterator and returns the remaining items.
func (it *PageIterator[T]) All() ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return items, err
		}

		items = append(items, item)
	}

	return items, nil
}

// ForEach applies fn to each remaining item, stopping at the first error.
func (it *PageIterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		if err := fn(item); err != nil {
			return err
		}
	}

	return nil
}

func (it *PageIterator[T]) fetchPage() error {
	params := pageQueryParams(it.params, it.page, it.pageSize)

	response, err := it.fetch(it.ctx, params)
	if err != nil {
		it.done = true

		return err
	}

	it.buffer = response.Items
	it.index = 0
	it.fetched += len(response.Items)
	it.page++

	if response.TotalHits > 0 {
		it.total = response.TotalHits
	}

	if len(response.Items) == 0 || len(response.Items) < it.pageSize {
		it.done = true
	}

	if it.total >= 0 && it.fetched >= it.total {
		it.done = true
	}

	return nil
}

// FetchAllPages retrieves every page of a collection into one slice.
func FetchAllPages[T any](ctx context.Context, fetch ListPageFunc[T], params *QueryParams, options *PaginationOptions) ([]T, error) {
	pageSize, maxPages := paginationLimits(params, options)

	var (
		items   []T
		fetched int
		total   = -1
	)

	page := 1
	if params != nil && params.Page > 0 {
		page = params.Page
	}

	for pageCount := 0; pageCount < maxPages; pageCount++ {
		pageParams := pageQueryParams(params, page, pageSize)

		response, err := fetch(ctx, pageParams)
		if err != nil {
			return nil, err
		}

		items = append(items, response.Items...)
		fetched += len(response.Items)

		if response.TotalHits > 0 {
			total = response.TotalHits
		}

		if len(response.Items) == 0 || len(response.Items) < pageSize {
			break
		}

		if total >= 0 && fetched >= total {
			break
		}

		page++
	}

	return items, nil
}

// StreamPages fetches pages in the background, delivering each page on the
// returned channel. The channel closes after the last page or the first
// error.
func StreamPages[T any](ctx context.Context, fetch ListPageFunc[T], params *QueryParams, options *PaginationOptions) <-chan PageResult[T] {
	results := make(chan PageResult[T])

	pageSize, maxPages := paginationLimits(params, options)

	go func() {
		defer close(results)

		var (
			fetched int
			total   = -1
		)

		page := 1
		if params != nil && params.Page > 0 {
			page = params.Page
		}

		for pageCount := 0; pageCount < maxPages; pageCount++ {
			pageParams := pageQueryParams(params, page, pageSize)

			response, err := fetch(ctx, pageParams)
			if err != nil {
				select {
				case results <- PageResult[T]{Page: page, Err: err}:
				case <-ctx.Done():
				}

				return
			}

			select {
			case results <- PageResult[T]{Items: response.Items, Page: page}:
			case <-ctx.Done():
				return
			}

			fetched += len(response.Items)

			if response.TotalHits > 0 {
				total = response.TotalHits
			}

			if len(response.Items) == 0 || len(response.Items) < pageSize {
				return
			}

			if total >= 0 && fetched >= total {
				return
			}

			page++
		}
	}()

	return results
}

func paginationLimits(params *QueryParams, options *PaginationOptions) (pageSize, maxPages int) {
	pageSize = constants.DefaultPageSize
	if params != nil && params.PageSize > 0 {
		pageSize = params.PageSize
	}

	maxPages = constants.MaxPages

	if options != nil {
		if options.PageSize > 0 {
			pageSize = options.PageSize
		}

		if options.MaxPages > 0 {
			maxPages = options.MaxPages
		}
	}

	return pageSize, maxPages
}

func pageQueryParams(params *QueryParams, page, pageSize int) *QueryParams {
	pageParams := NewQueryParams().WithPage(page).WithPageSize(pageSize)

	if params != nil {
		pageParams.Search = params.Search
		pageParams.OrderBy = params.OrderBy

		for key, values := range params.Filters {
			pageParams.Filters[key] = append([]string(nil), values...)
		}
	}

	return pageParams
}
