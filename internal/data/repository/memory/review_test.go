package memory

import (
	"context"
	"testing"
	"time"

	"moviehub/internal/data/entity"
	"moviehub/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReview(userID, movieID uuid.UUID, rating int) *entity.Review {
	now := time.Now()
	return &entity.Review{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:  userID,
		MovieID: movieID,
		Rating:  rating,
		Comment: "a comment",
	}
}

func TestReviewRepositoryCreateDuplicate(t *testing.T) {
	repo := NewReviewRepository()
	userID := uuid.New()
	movieID := uuid.New()

	require.NoError(t, repo.Create(context.Background(), newReview(userID, movieID, 4)))

	err := repo.Create(context.Background(), newReview(userID, movieID, 5))
	assert.ErrorIs(t, err, apperrors.ErrDuplicateReview)

	// Same user, different movie is fine
	assert.NoError(t, repo.Create(context.Background(), newReview(userID, uuid.New(), 5)))
}

func TestReviewRepositoryFindByUserAndMovie(t *testing.T) {
	repo := NewReviewRepository()
	userID := uuid.New()
	movieID := uuid.New()

	seeded := newReview(userID, movieID, 3)
	require.NoError(t, repo.Create(context.Background(), seeded))
	require.NoError(t, repo.Create(context.Background(), newReview(uuid.New(), movieID, 5)))

	found, err := repo.FindByUserAndMovie(context.Background(), userID, movieID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, seeded.ID, found.ID)

	// No review by this user for this movie
	missing, err := repo.FindByUserAndMovie(context.Background(), userID, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestReviewRepositoryMovieStats(t *testing.T) {
	repo := NewReviewRepository()
	movieID := uuid.New()

	for _, rating := range []int{5, 4, 5} {
		require.NoError(t, repo.Create(context.Background(), newReview(uuid.New(), movieID, rating)))
	}

	avg, count, err := repo.GetMovieReviewStats(context.Background(), movieID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.InDelta(t, 4.7, avg, 0.001)

	avg, count, err = repo.GetMovieReviewStats(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Zero(t, avg)
}
