package engine

import (
	"testing"

	"moviehub/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func reviewsWithRatings(ratings ...int) []*entity.Review {
	reviews := make([]*entity.Review, len(ratings))
	for i, r := range ratings {
		reviews[i] = &entity.Review{Rating: r}
	}
	return reviews
}

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"no reviews", nil, 0},
		{"single review", []int{3}, 3.0},
		{"five four five rounds up", []int{5, 4, 5}, 4.7},
		{"exact mean", []int{4, 4}, 4.0},
		{"rounds down", []int{1, 2}, 1.5},
		{"one third rounds", []int{1, 1, 2}, 1.3},
		{"all fives", []int{5, 5, 5, 5}, 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AverageRating(reviewsWithRatings(tt.ratings...))
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestAggregateRatings(t *testing.T) {
	stats := AggregateRatings(reviewsWithRatings(5, 4, 5))

	assert.InDelta(t, 4.7, stats.AverageRating, 0.0001)
	assert.Equal(t, int64(3), stats.ReviewCount)
}

func TestAggregateRatingsEmpty(t *testing.T) {
	stats := AggregateRatings(nil)

	assert.Equal(t, float64(0), stats.AverageRating)
	assert.Equal(t, int64(0), stats.ReviewCount)
}

func TestRoundRating(t *testing.T) {
	assert.InDelta(t, 4.7, RoundRating(4.6666), 0.0001)
	assert.InDelta(t, 4.0, RoundRating(4.04), 0.0001)
	assert.InDelta(t, 0.0, RoundRating(0), 0.0001)
}
