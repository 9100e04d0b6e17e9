package response

import "moviehub/internal/engine"

type PaginatedResponse[T any] struct {
	Data       []T            `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

// PaginationMeta
type PaginationMeta struct {
	Total       int64 `json:"total"`
	Page        int   `json:"page"`
	PerPage     int   `json:"per_page"`
	TotalPages  int   `json:"total_pages"`
	HasNextPage bool  `json:"has_next_page"`
	HasPrevPage bool  `json:"has_prev_page"`
}

// NewPaginatedResponse converts an engine page of entities into a response
// envelope, mapping each item through convert.
func NewPaginatedResponse[E, T any](page engine.Page[E], perPage int, convert func(E) T) *PaginatedResponse[T] {
	data := make([]T, len(page.Items))
	for i, item := range page.Items {
		data[i] = convert(item)
	}

	return &PaginatedResponse[T]{
		Data: data,
		Pagination: PaginationMeta{
			Total:       page.TotalCount,
			Page:        page.CurrentPage,
			PerPage:     engine.ClampLimit(perPage),
			TotalPages:  page.TotalPages,
			HasNextPage: page.HasNextPage,
			HasPrevPage: page.HasPrevPage,
		},
	}
}
