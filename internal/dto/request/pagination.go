package request

import "moviehub/internal/engine"

type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"per_page" validate:"min=1,max=100"`
}

// Offset and Limit delegate to the engine's clamping rules so the DTO and
// the store slicing agree on the same arithmetic.
func (p PaginatedRequest) Offset() int {
	return engine.Offset(p.Page, p.PerPage)
}

func (p PaginatedRequest) Limit() int {
	return engine.ClampLimit(p.PerPage)
}
