// Package memory provides in-memory implementations of the repository
// interfaces. They back the usecase tests and the seed catalog in
// development, and hold the same contracts as the Postgres repositories,
// including atomic uniqueness enforcement on review creation.
package memory

import (
	"context"
	"sort"
	"sync"

	"moviehub/internal/data/entity"
	"moviehub/internal/data/repository"
	"moviehub/internal/engine"
	"moviehub/pkg/apperrors"

	"github.com/google/uuid"
)

type ReviewRepository struct {
	mu   sync.RWMutex
	data map[uuid.UUID]*entity.Review
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{data: map[uuid.UUID]*entity.Review{}}
}

var _ repository.ReviewRepository = (*ReviewRepository)(nil)

// Create inserts a review. The existence check and the insert run under one
// write lock, so two concurrent creations for the same (movie, user) pair
// cannot both succeed.
func (r *ReviewRepository) Create(_ context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.data {
		if existing.MovieID == review.MovieID && existing.UserID == review.UserID {
			return apperrors.ErrDuplicateReview
		}
	}

	stored := *review
	r.data[review.ID] = &stored
	return nil
}

func (r *ReviewRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	review, ok := r.data[id]
	if !ok {
		return nil, nil
	}
	copied := *review
	return &copied, nil
}

func (r *ReviewRepository) FindByMovieID(_ context.Context, movieID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := r.filter(func(review *entity.Review) bool {
		return review.MovieID == movieID
	})
	return slicePage(matched, limit, offset), nil
}

func (r *ReviewRepository) FindByUserID(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := r.filter(func(review *entity.Review) bool {
		return review.UserID == userID
	})
	return slicePage(matched, limit, offset), nil
}

func (r *ReviewRepository) FindByUserAndMovie(_ context.Context, userID, movieID uuid.UUID) (*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, review := range r.data {
		if review.UserID == userID && review.MovieID == movieID {
			copied := *review
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *ReviewRepository) CountByMovieID(_ context.Context, movieID uuid.UUID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, review := range r.data {
		if review.MovieID == movieID {
			count++
		}
	}
	return count, nil
}

func (r *ReviewRepository) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, review := range r.data {
		if review.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *ReviewRepository) Update(_ context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[review.ID]; !ok {
		return apperrors.ErrNotFound
	}

	stored := *review
	r.data[review.ID] = &stored
	return nil
}

func (r *ReviewRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[id]; !ok {
		return apperrors.ErrNotFound
	}

	delete(r.data, id)
	return nil
}

// GetMovieReviewStats aggregates through the engine. The engine rounds the
// mean to one decimal; the Postgres repository returns the raw average, and
// the service's final rounding makes both land on the same value.
func (r *ReviewRepository) GetMovieReviewStats(_ context.Context, movieID uuid.UUID) (float64, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := r.filter(func(review *entity.Review) bool {
		return review.MovieID == movieID
	})

	stats := engine.AggregateRatings(matched)
	return stats.AverageRating, stats.ReviewCount, nil
}

// filter returns copies of matching reviews ordered by creation time
// descending, the only order the store supports.
func (r *ReviewRepository) filter(match func(*entity.Review) bool) []*entity.Review {
	var matched []*entity.Review
	for _, review := range r.data {
		if match(review) {
			copied := *review
			matched = append(matched, &copied)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			// deterministic tie-break for equal timestamps
			return matched[i].ID.String() > matched[j].ID.String()
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	return matched
}

func slicePage(reviews []*entity.Review, limit, offset int) []*entity.Review {
	if offset >= len(reviews) {
		return nil
	}
	end := offset + limit
	if end > len(reviews) {
		end = len(reviews)
	}
	return reviews[offset:end]
}
