package usecase

import (
	"context"
	"fmt"
	"time"

	"moviehub/internal/data/entity"
	"moviehub/internal/data/repository"
	"moviehub/internal/dto/request"
	"moviehub/internal/dto/response"
	"moviehub/internal/engine"
	"moviehub/pkg/apperrors"
	"moviehub/pkg/cache"
	"moviehub/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieService interface {
	// Public endpoints
	ListMovies(ctx context.Context, req *request.ListMoviesRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	SearchMovies(ctx context.Context, req *request.ListMoviesRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	GetMovieWithStats(ctx context.Context, movieID string) (*response.MovieDetailResponse, error)

	// Catalog management (authenticated)
	CreateMovie(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, req *request.UpdateMovieRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string) error
}

type movieService struct {
	repo  *repository.Repository
	cache *cache.Cache
	log   *zap.Logger
}

func NewMovieService(repo *repository.Repository, c *cache.Cache, log *zap.Logger) MovieService {
	return &movieService{
		repo:  repo,
		cache: c,
		log:   log.With(zap.String("service", "movie")),
	}
}

func movieDetailCacheKey(movieID uuid.UUID) string {
	return "movie:detail:" + movieID.String()
}

func (s *movieService) ListMovies(ctx context.Context, req *request.ListMoviesRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	return s.listFiltered(ctx, req)
}

// SearchMovies is ListMovies with at least one filter field required.
func (s *movieService) SearchMovies(ctx context.Context, req *request.ListMoviesRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	filter := toMovieFilter(req)
	if filter.IsZero() {
		return nil, fmt.Errorf("%w: at least one of query, genre, year, min_rating is required", apperrors.ErrInvalidArgument)
	}

	return s.listFiltered(ctx, req)
}

// listFiltered loads the candidate set and lets the engine filter, sort and
// slice it.
func (s *movieService) listFiltered(ctx context.Context, req *request.ListMoviesRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load movie catalog", zap.Error(err))
		return nil, fmt.Errorf("load movies: %w", err)
	}

	filtered := engine.FilterMovies(movies, toMovieFilter(req))
	sorted := engine.SortMovies(filtered, req.SortBy)
	page := engine.Paginate(sorted, req.Page, req.Limit())

	s.log.Debug("Movies listed",
		zap.Int("matched", len(filtered)),
		zap.Int("page", page.CurrentPage),
		zap.String("sort_by", req.SortBy),
	)

	return response.NewPaginatedResponse(page, req.Limit(), response.MovieToResponse), nil
}

func toMovieFilter(req *request.ListMoviesRequest) engine.MovieFilter {
	return engine.MovieFilter{
		Query:     req.Search,
		Genre:     req.Genre,
		Year:      req.Year,
		MinRating: req.MinRating,
	}
}

func (s *movieService) GetMovieWithStats(ctx context.Context, movieID string) (*response.MovieDetailResponse, error) {
	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid movie ID %q", apperrors.ErrInvalidArgument, movieID)
	}

	cacheKey := movieDetailCacheKey(movieUUID)

	var cached response.MovieDetailResponse
	if s.cache.Get(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieUUID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", movieID, apperrors.ErrNotFound)
	}

	avgRating, reviewCount, err := s.repo.Review.GetMovieReviewStats(ctx, movieUUID)
	if err != nil {
		s.log.Error("Failed to get review stats",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("get review stats: %w", err)
	}

	detail := &response.MovieDetailResponse{
		MovieResponse: response.MovieToResponse(movie),
		AverageRating: engine.RoundRating(avgRating),
		ReviewCount:   reviewCount,
	}

	s.cache.Set(ctx, cacheKey, detail)

	return detail, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:             req.Title,
		Description:       req.Description,
		Genre:             req.Genre,
		Director:          req.Director,
		Year:              req.Year,
		Rating:            req.Rating,
		DurationInMinutes: req.DurationInMinutes,
		PosterURL:         req.PosterURL,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie", zap.Error(err), zap.String("title", req.Title))
		return nil, err
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
	)

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.UpdateMovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid movie ID %q", apperrors.ErrInvalidArgument, movieID)
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieUUID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", movieID, apperrors.ErrNotFound)
	}

	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.Description != nil {
		movie.Description = req.Description
	}
	if req.Genre != nil {
		movie.Genre = *req.Genre
	}
	if req.Director != nil {
		movie.Director = *req.Director
	}
	if req.Year != nil {
		movie.Year = *req.Year
	}
	if req.Rating != nil {
		movie.Rating = *req.Rating
	}
	if req.DurationInMinutes != nil {
		movie.DurationInMinutes = *req.DurationInMinutes
	}
	if req.PosterURL != nil {
		movie.PosterURL = req.PosterURL
	}

	movie.UpdatedAt = time.Now()

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		s.log.Error("Failed to update movie", zap.Error(err), zap.String("movie_id", movieID))
		return nil, err
	}

	s.cache.Delete(ctx, movieDetailCacheKey(movieUUID))

	s.log.Info("Movie updated", zap.String("movie_id", movieID))

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return fmt.Errorf("%w: invalid movie ID %q", apperrors.ErrInvalidArgument, movieID)
	}

	if err := s.repo.Movie.Delete(ctx, movieUUID); err != nil {
		s.log.Error("Failed to delete movie", zap.Error(err), zap.String("movie_id", movieID))
		return err
	}

	s.cache.Delete(ctx, movieDetailCacheKey(movieUUID))

	s.log.Info("Movie deleted", zap.String("movie_id", movieID))
	return nil
}
