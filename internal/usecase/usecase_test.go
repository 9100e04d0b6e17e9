package usecase

import (
	"context"
	"testing"
	"time"

	"moviehub/internal/data/entity"
	"moviehub/internal/data/repository"
	"moviehub/internal/data/repository/memory"
	"moviehub/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestRepository wires the in-memory stores behind the same interfaces
// the Postgres repositories implement.
func newTestRepository() *repository.Repository {
	return &repository.Repository{
		User:   memory.NewUserRepository(),
		Movie:  memory.NewMovieRepository(),
		Review: memory.NewReviewRepository(),
	}
}

func testJWTConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{
			Secret:      "test-secret-test-secret-test-secret",
			ExpiryHours: 1,
		},
	}
}

func seedUser(t *testing.T, repo *repository.Repository, username string) *entity.User {
	t.Helper()

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		IsActive:     true,
	}
	require.NoError(t, repo.User.Create(context.Background(), user))
	return user
}

func seedMovie(t *testing.T, repo *repository.Repository, title, genre string, year int, rating float64) *entity.Movie {
	t.Helper()

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:             title,
		Genre:             genre,
		Director:          "Test Director",
		Year:              year,
		Rating:            rating,
		DurationInMinutes: 120,
	}
	require.NoError(t, repo.Movie.Create(context.Background(), movie))
	return movie
}

// seedReview inserts a review directly through the store with an explicit
// creation time, so ordering tests can control recency.
func seedReview(t *testing.T, repo *repository.Repository, userID, movieID uuid.UUID, rating int, createdAt time.Time) *entity.Review {
	t.Helper()

	review := &entity.Review{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
		UserID:  userID,
		MovieID: movieID,
		Rating:  rating,
		Comment: "seeded comment",
	}
	require.NoError(t, repo.Review.Create(context.Background(), review))
	return review
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
