package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0))
	assert.Equal(t, 1, ClampPage(-3))
	assert.Equal(t, 1, ClampPage(1))
	assert.Equal(t, 7, ClampPage(7))
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 10, ClampLimit(0))
	assert.Equal(t, 10, ClampLimit(-1))
	assert.Equal(t, 1, ClampLimit(1))
	assert.Equal(t, 100, ClampLimit(250))
}

func TestPaginate(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	tests := []struct {
		name        string
		page        int
		limit       int
		wantLen     int
		wantFirst   int
		wantPages   int
		wantNext    bool
		wantPrev    bool
		wantCurrent int
	}{
		{"first page", 1, 10, 10, 0, 3, true, false, 1},
		{"middle page", 2, 10, 10, 10, 3, true, true, 2},
		{"last partial page", 3, 10, 5, 20, 3, false, true, 3},
		{"page beyond data", 9, 10, 0, 0, 3, false, true, 9},
		{"zero page falls back to default", 0, 10, 10, 0, 3, true, false, 1},
		{"zero limit falls back to default", 1, 0, 10, 0, 3, true, false, 1},
		{"limit one", 1, 1, 1, 0, 25, true, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(items, tt.page, tt.limit)

			assert.Len(t, page.Items, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, page.Items[0])
			}
			assert.Equal(t, tt.wantCurrent, page.CurrentPage)
			assert.Equal(t, tt.wantPages, page.TotalPages)
			assert.Equal(t, int64(25), page.TotalCount)
			assert.Equal(t, tt.wantNext, page.HasNextPage)
			assert.Equal(t, tt.wantPrev, page.HasPrevPage)
		})
	}
}

func TestPaginateEmpty(t *testing.T) {
	page := Paginate([]string{}, 1, 10)

	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, int64(0), page.TotalCount)
	assert.False(t, page.HasNextPage)
	assert.False(t, page.HasPrevPage)
}

func TestPaginateNeverExceedsLimit(t *testing.T) {
	items := make([]int, 37)

	for page := 1; page <= 6; page++ {
		for _, limit := range []int{1, 3, 10, 37, 50} {
			got := Paginate(items, page, limit)
			assert.LessOrEqual(t, len(got.Items), limit)
			assert.Equal(t, TotalPages(37, limit), got.TotalPages)
		}
	}
}

func TestNewPage(t *testing.T) {
	// Store already cut the slice; the engine only computes the metadata.
	items := []string{"a", "b", "c"}

	page := NewPage(items, 2, 3, 8)

	assert.Equal(t, items, page.Items)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(8), page.TotalCount)
	assert.True(t, page.HasNextPage)
	assert.True(t, page.HasPrevPage)
}

func TestNewPageLastPage(t *testing.T) {
	page := NewPage([]string{"x", "y"}, 3, 3, 8)

	assert.False(t, page.HasNextPage)
	assert.True(t, page.HasPrevPage)
}

func TestNewPageNilItems(t *testing.T) {
	page := NewPage[string](nil, 4, 10, 8)

	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasNextPage)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 4, TotalPages(10, 3))
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 10))
	assert.Equal(t, 10, Offset(2, 10))
	assert.Equal(t, 0, Offset(0, 10))
	assert.Equal(t, 40, Offset(5, 10))
}
