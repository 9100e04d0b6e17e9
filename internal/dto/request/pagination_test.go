package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginatedRequestOffsetLimit(t *testing.T) {
	cases := []struct {
		name       string
		page       int
		perPage    int
		wantOffset int
		wantLimit  int
	}{
		{name: "defaults", page: 0, perPage: 0, wantOffset: 0, wantLimit: 10},
		{name: "first page", page: 1, perPage: 10, wantOffset: 0, wantLimit: 10},
		{name: "second page", page: 2, perPage: 10, wantOffset: 10, wantLimit: 10},
		{name: "negative page", page: -3, perPage: 20, wantOffset: 0, wantLimit: 20},
		{name: "oversized per_page clamped", page: 3, perPage: 500, wantOffset: 200, wantLimit: 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := PaginatedRequest{Page: tc.page, PerPage: tc.perPage}
			assert.Equal(t, tc.wantOffset, req.Offset())
			assert.Equal(t, tc.wantLimit, req.Limit())
		})
	}
}
