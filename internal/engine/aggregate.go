package engine

import (
	"math"

	"moviehub/internal/data/entity"
)

// RatingStats are the aggregate review figures for one movie.
type RatingStats struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

// AverageRating returns the mean review rating rounded to one decimal, or 0
// when there are no reviews.
func AverageRating(reviews []*entity.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	var sum int
	for _, review := range reviews {
		sum += review.Rating
	}

	return RoundRating(float64(sum) / float64(len(reviews)))
}

// RoundRating rounds a raw average to one decimal place.
func RoundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}

// AggregateRatings builds the stats for a set of reviews belonging to one
// movie.
func AggregateRatings(reviews []*entity.Review) RatingStats {
	return RatingStats{
		AverageRating: AverageRating(reviews),
		ReviewCount:   int64(len(reviews)),
	}
}
