// Package engine holds the pure result-set logic: pagination slicing,
// movie filtering and ordering, rating aggregation, and the uniqueness and
// ownership predicates. Nothing here touches storage; every function
// operates on records its caller already fetched.
package engine

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Page is one pagination slice of an ordered result set plus its metadata.
type Page[T any] struct {
	Items       []T   `json:"items"`
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	TotalCount  int64 `json:"total_count"`
	HasNextPage bool  `json:"has_next_page"`
	HasPrevPage bool  `json:"has_prev_page"`
}

// ClampPage normalizes a 1-based page number; anything below 1 becomes the
// default.
func ClampPage(page int) int {
	if page < 1 {
		return DefaultPage
	}
	return page
}

// ClampLimit normalizes a page size into [1, MaxLimit]; anything below 1
// becomes the default.
func ClampLimit(limit int) int {
	if limit < 1 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Offset converts page/limit into the slice start index.
func Offset(page, limit int) int {
	return (ClampPage(page) - 1) * ClampLimit(limit)
}

// TotalPages is ceil(total/limit).
func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// Paginate slices an already-ordered sequence. A page past the end yields an
// empty slice, never an error.
func Paginate[T any](items []T, page, limit int) Page[T] {
	page = ClampPage(page)
	limit = ClampLimit(limit)

	total := int64(len(items))
	start := (page - 1) * limit
	end := start + limit

	var slice []T
	if start < len(items) {
		if end > len(items) {
			end = len(items)
		}
		slice = items[start:end]
	} else {
		slice = []T{}
		end = start
	}

	return Page[T]{
		Items:       slice,
		CurrentPage: page,
		TotalPages:  TotalPages(total, limit),
		TotalCount:  total,
		HasNextPage: int64(start+limit) < total,
		HasPrevPage: start > 0,
	}
}

// NewPage builds pagination metadata around a slice the store already cut
// with LIMIT/OFFSET, given the total match count.
func NewPage[T any](items []T, page, limit int, total int64) Page[T] {
	page = ClampPage(page)
	limit = ClampLimit(limit)

	if items == nil {
		items = []T{}
	}

	start := (page - 1) * limit

	return Page[T]{
		Items:       items,
		CurrentPage: page,
		TotalPages:  TotalPages(total, limit),
		TotalCount:  total,
		HasNextPage: int64(start+limit) < total,
		HasPrevPage: start > 0,
	}
}
