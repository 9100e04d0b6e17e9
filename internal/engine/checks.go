package engine

import (
	"moviehub/internal/data/entity"

	"github.com/google/uuid"
)

// HasExistingReview reports whether the given author already reviewed the
// given movie within the supplied set.
func HasExistingReview(reviews []*entity.Review, movieID, userID uuid.UUID) bool {
	for _, review := range reviews {
		if review.MovieID == movieID && review.UserID == userID {
			return true
		}
	}
	return false
}

// IsOwner reports whether the verified identity is the review's author.
// Ownership is only ever compared against this identity, never against
// anything supplied in a request body.
func IsOwner(review *entity.Review, userID uuid.UUID) bool {
	return review != nil && review.UserID == userID
}
