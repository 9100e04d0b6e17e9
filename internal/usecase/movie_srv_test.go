package usecase

import (
	"context"
	"testing"
	"time"

	"moviehub/internal/dto/request"
	"moviehub/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMoviesFilterSortPaginate(t *testing.T) {
	repo := newTestRepository()
	service := NewMovieService(repo, nil, testLogger())

	seedMovie(t, repo, "The Dark Knight", "Action", 2008, 9.0)
	seedMovie(t, repo, "Inception", "Sci-Fi", 2010, 8.8)
	seedMovie(t, repo, "Parasite", "Thriller", 2019, 8.5)
	seedMovie(t, repo, "Dark Waters", "Drama", 2019, 7.6)

	t.Run("query matches case-insensitively", func(t *testing.T) {
		result, err := service.ListMovies(context.Background(), &request.ListMoviesRequest{
			Search:           "DARK",
			PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 10},
		})
		require.NoError(t, err)

		require.Len(t, result.Data, 2)
		assert.Equal(t, int64(2), result.Pagination.Total)
	})

	t.Run("sort by rating descending", func(t *testing.T) {
		result, err := service.ListMovies(context.Background(), &request.ListMoviesRequest{
			SortBy:           "rating",
			PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 10},
		})
		require.NoError(t, err)

		require.Len(t, result.Data, 4)
		assert.Equal(t, "The Dark Knight", result.Data[0].Title)
		assert.Equal(t, "Dark Waters", result.Data[3].Title)
	})

	t.Run("combined filters narrow the set", func(t *testing.T) {
		year := 2019
		minRating := 8.0
		result, err := service.ListMovies(context.Background(), &request.ListMoviesRequest{
			Year:             &year,
			MinRating:        &minRating,
			PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 10},
		})
		require.NoError(t, err)

		require.Len(t, result.Data, 1)
		assert.Equal(t, "Parasite", result.Data[0].Title)
	})

	t.Run("pagination slices the sorted set", func(t *testing.T) {
		result, err := service.ListMovies(context.Background(), &request.ListMoviesRequest{
			SortBy:           "title",
			PaginatedRequest: request.PaginatedRequest{Page: 2, PerPage: 3},
		})
		require.NoError(t, err)

		require.Len(t, result.Data, 1)
		assert.Equal(t, 2, result.Pagination.TotalPages)
		assert.True(t, result.Pagination.HasPrevPage)
		assert.False(t, result.Pagination.HasNextPage)
	})
}

func TestSearchMoviesRequiresFilter(t *testing.T) {
	repo := newTestRepository()
	service := NewMovieService(repo, nil, testLogger())

	seedMovie(t, repo, "Inception", "Sci-Fi", 2010, 8.8)

	_, err := service.SearchMovies(context.Background(), &request.ListMoviesRequest{
		PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 10},
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	result, err := service.SearchMovies(context.Background(), &request.ListMoviesRequest{
		Genre:            "Sci-Fi",
		PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 10},
	})
	require.NoError(t, err)
	assert.Len(t, result.Data, 1)
}

func TestGetMovieWithStats(t *testing.T) {
	repo := newTestRepository()
	service := NewMovieService(repo, nil, testLogger())

	movie := seedMovie(t, repo, "Inception", "Sci-Fi", 2010, 8.8)

	alice := seedUser(t, repo, "alice")
	bob := seedUser(t, repo, "bob")
	seedReview(t, repo, alice.ID, movie.ID, 5, time.Now())
	seedReview(t, repo, bob.ID, movie.ID, 4, time.Now())

	detail, err := service.GetMovieWithStats(context.Background(), movie.ID.String())
	require.NoError(t, err)

	assert.Equal(t, "Inception", detail.Title)
	assert.Equal(t, int64(2), detail.ReviewCount)
	assert.InDelta(t, 4.5, detail.AverageRating, 0.001)

	// The catalog rating is editorial and stays untouched by reviews
	assert.InDelta(t, 8.8, detail.Rating, 0.001)
}

func TestGetMovieWithStatsNotFound(t *testing.T) {
	repo := newTestRepository()
	service := NewMovieService(repo, nil, testLogger())

	_, err := service.GetMovieWithStats(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = service.GetMovieWithStats(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestCreateMovie(t *testing.T) {
	repo := newTestRepository()
	service := NewMovieService(repo, nil, testLogger())

	movie, err := service.CreateMovie(context.Background(), &request.CreateMovieRequest{
		Title:             "Amelie",
		Genre:             "Romance",
		Director:          "Jean-Pierre Jeunet",
		Year:              2001,
		Rating:            8.3,
		DurationInMinutes: 122,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, movie.ID)
	assert.Equal(t, "Amelie", movie.Title)

	exists, err := repo.Movie.Exists(context.Background(), uuid.MustParse(movie.ID))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCreateMovieValidation(t *testing.T) {
	repo := newTestRepository()
	service := NewMovieService(repo, nil, testLogger())

	_, err := service.CreateMovie(context.Background(), &request.CreateMovieRequest{
		Genre:    "Romance",
		Director: "Jean-Pierre Jeunet",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestUpdateMoviePartial(t *testing.T) {
	repo := newTestRepository()
	service := NewMovieService(repo, nil, testLogger())

	movie := seedMovie(t, repo, "Inception", "Sci-Fi", 2010, 8.8)

	newTitle := "Inception (Director's Cut)"
	updated, err := service.UpdateMovie(context.Background(), movie.ID.String(), &request.UpdateMovieRequest{
		Title: &newTitle,
	})
	require.NoError(t, err)

	assert.Equal(t, newTitle, updated.Title)
	assert.Equal(t, "Sci-Fi", updated.Genre, "absent fields stay unchanged")
	assert.Equal(t, 2010, updated.Year)
}

func TestUpdateMovieNotFound(t *testing.T) {
	repo := newTestRepository()
	service := NewMovieService(repo, nil, testLogger())

	title := "Nope"
	_, err := service.UpdateMovie(context.Background(), uuid.New().String(), &request.UpdateMovieRequest{
		Title: &title,
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteMovie(t *testing.T) {
	repo := newTestRepository()
	service := NewMovieService(repo, nil, testLogger())

	movie := seedMovie(t, repo, "Inception", "Sci-Fi", 2010, 8.8)

	require.NoError(t, service.DeleteMovie(context.Background(), movie.ID.String()))

	exists, err := repo.Movie.Exists(context.Background(), movie.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	err = service.DeleteMovie(context.Background(), movie.ID.String())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
