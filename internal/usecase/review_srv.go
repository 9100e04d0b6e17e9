package usecase

import (
	"context"
	"errors"
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

type ReviewService interface {
	// Public endpoints
	GetReview(ctx context.Context, reviewID string) (*response.ReviewResponse, error)
	GetMovieReviews(ctx context.Context, movieID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	GetMovieReviewStats(ctx context.Context, movieID string) (*response.MovieReviewStats, error)

	// Authenticated endpoints; userID is the verified identity from the
	// auth middleware, never a client-supplied field.
	CreateReview(ctx context.Context, userID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetMyMovieReview(ctx context.Context, userID uuid.UUID, movieID string) (*response.ReviewResponse, error)
	GetUserReviews(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	UpdateReview(ctx context.Context, reviewID string, userID uuid.UUID, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, reviewID string, userID uuid.UUID) error
}

type reviewService struct {
	repo  *repository.Repository
	cache *cache.Cache
	log   *zap.Logger
}

func NewReviewService(repo *repository.Repository, c *cache.Cache, log *zap.Logger) ReviewService {
	return &reviewService{
		repo:  repo,
		cache: c,
		log:   log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, userID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	comment, ok := utils.TrimmedOrEmpty(req.Comment)
	if !ok {
		return nil, fmt.Errorf("%w: comment must not be empty", apperrors.ErrInvalidArgument)
	}

	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid movie ID %q", apperrors.ErrInvalidArgument, req.MovieID)
	}

	// Check if movie exists
	exists, err := s.repo.Movie.Exists(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to check movie existence", zap.Error(err))
		return nil, fmt.Errorf("check movie exists: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("movie %s: %w", req.MovieID, apperrors.ErrNotFound)
	}

	// Create review entity; insert sets both timestamps equal. Uniqueness
	// is enforced by the store itself, so concurrent creations for the same
	// (movie, user) pair cannot both pass a check done here.
	now := time.Now()
	review := &entity.Review{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:  userID,
		MovieID: movieID,
		Rating:  req.Rating,
		Comment: comment,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicateReview) {
			s.log.Error("Failed to create review",
				zap.Error(err),
				zap.String("user_id", userID.String()),
				zap.String("movie_id", req.MovieID),
			)
		}
		return nil, err
	}

	s.invalidateMovieStats(ctx, movieID)

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("movie_id", req.MovieID),
		zap.Int("rating", req.Rating),
	)

	return s.buildReviewResponse(ctx, review), nil
}

func (s *reviewService) GetReview(ctx context.Context, reviewID string) (*response.ReviewResponse, error) {
	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid review ID %q", apperrors.ErrInvalidArgument, reviewID)
	}

	review, err := s.repo.Review.FindByID(ctx, reviewUUID)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}
	if review == nil {
		return nil, fmt.Errorf("review %s: %w", reviewID, apperrors.ErrNotFound)
	}

	return s.buildReviewResponse(ctx, review), nil
}

// GetMyMovieReview returns the caller's own review for a movie, so clients
// can tell "edit your review" apart from "write one" without paging through
// the movie's reviews.
func (s *reviewService) GetMyMovieReview(ctx context.Context, userID uuid.UUID, movieID string) (*response.ReviewResponse, error) {
	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid movie ID %q", apperrors.ErrInvalidArgument, movieID)
	}

	exists, err := s.repo.Movie.Exists(ctx, movieUUID)
	if err != nil {
		return nil, fmt.Errorf("check movie exists: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("movie %s: %w", movieID, apperrors.ErrNotFound)
	}

	review, err := s.repo.Review.FindByUserAndMovie(ctx, userID, movieUUID)
	if err != nil {
		s.log.Error("Failed to find review by user and movie",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("find review by user and movie: %w", err)
	}
	if review == nil {
		return nil, fmt.Errorf("review by user %s for movie %s: %w", userID.String(), movieID, apperrors.ErrNotFound)
	}

	return s.buildReviewResponse(ctx, review), nil
}

func (s *reviewService) GetMovieReviews(ctx context.Context, movieID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid movie ID %q", apperrors.ErrInvalidArgument, movieID)
	}

	exists, err := s.repo.Movie.Exists(ctx, movieUUID)
	if err != nil {
		return nil, fmt.Errorf("check movie exists: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("movie %s: %w", movieID, apperrors.ErrNotFound)
	}

	limit := req.Limit()
	offset := req.Offset()

	// The store cuts the slice; the engine computes the page metadata.
	reviews, err := s.repo.Review.FindByMovieID(ctx, movieUUID, limit, offset)
	if err != nil {
		s.log.Error("Failed to get movie reviews",
			zap.Error(err),
			zap.String("movie_id", movieID),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get movie reviews: %w", err)
	}

	total, err := s.repo.Review.CountByMovieID(ctx, movieUUID)
	if err != nil {
		s.log.Error("Failed to count movie reviews", zap.Error(err))
		return nil, fmt.Errorf("count movie reviews: %w", err)
	}

	return s.buildReviewPage(ctx, reviews, req.Page, limit, total)
}

func (s *reviewService) GetUserReviews(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	reviews, err := s.repo.Review.FindByUserID(ctx, userID, limit, offset)
	if err != nil {
		s.log.Error("Failed to get user reviews",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get user reviews: %w", err)
	}

	total, err := s.repo.Review.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count user reviews", zap.Error(err))
		return nil, fmt.Errorf("count user reviews: %w", err)
	}

	return s.buildReviewPage(ctx, reviews, req.Page, limit, total)
}

func (s *reviewService) UpdateReview(ctx context.Context, reviewID string, userID uuid.UUID, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid review ID %q", apperrors.ErrInvalidArgument, reviewID)
	}

	review, err := s.repo.Review.FindByID(ctx, reviewUUID)
	if err != nil {
		return nil, fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return nil, fmt.Errorf("review %s: %w", reviewID, apperrors.ErrNotFound)
	}

	// Ownership check against the verified identity
	if !engine.IsOwner(review, userID) {
		return nil, fmt.Errorf("review %s: %w", reviewID, apperrors.ErrForbidden)
	}

	// Only rating and comment are mutable; absent fields stay unchanged
	updated := false

	if req.Rating != nil && *req.Rating != review.Rating {
		review.Rating = *req.Rating
		updated = true
	}

	if req.Comment != nil {
		comment, ok := utils.TrimmedOrEmpty(*req.Comment)
		if !ok {
			return nil, fmt.Errorf("%w: comment must not be empty", apperrors.ErrInvalidArgument)
		}
		if comment != review.Comment {
			review.Comment = comment
			updated = true
		}
	}

	if !updated {
		// No changes
		return s.buildReviewResponse(ctx, review), nil
	}

	review.UpdatedAt = time.Now()

	if err := s.repo.Review.Update(ctx, review); err != nil {
		s.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", reviewID),
		)
		return nil, err
	}

	s.invalidateMovieStats(ctx, review.MovieID)

	s.log.Info("Review updated",
		zap.String("review_id", reviewID),
		zap.String("user_id", userID.String()),
	)

	return s.buildReviewResponse(ctx, review), nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID string, userID uuid.UUID) error {
	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return fmt.Errorf("%w: invalid review ID %q", apperrors.ErrInvalidArgument, reviewID)
	}

	review, err := s.repo.Review.FindByID(ctx, reviewUUID)
	if err != nil {
		return fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return fmt.Errorf("review %s: %w", reviewID, apperrors.ErrNotFound)
	}

	if !engine.IsOwner(review, userID) {
		return fmt.Errorf("review %s: %w", reviewID, apperrors.ErrForbidden)
	}

	if err := s.repo.Review.Delete(ctx, reviewUUID); err != nil {
		s.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", reviewID),
		)
		return err
	}

	s.invalidateMovieStats(ctx, review.MovieID)

	s.log.Info("Review deleted",
		zap.String("review_id", reviewID),
		zap.String("user_id", userID.String()),
		zap.String("movie_id", review.MovieID.String()),
	)

	return nil
}

func (s *reviewService) GetMovieReviewStats(ctx context.Context, movieID string) (*response.MovieReviewStats, error) {
	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid movie ID %q", apperrors.ErrInvalidArgument, movieID)
	}

	exists, err := s.repo.Movie.Exists(ctx, movieUUID)
	if err != nil {
		return nil, fmt.Errorf("check movie exists: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("movie %s: %w", movieID, apperrors.ErrNotFound)
	}

	avgRating, reviewCount, err := s.repo.Review.GetMovieReviewStats(ctx, movieUUID)
	if err != nil {
		s.log.Error("Failed to get movie review stats",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("get movie review stats: %w", err)
	}

	return &response.MovieReviewStats{
		AverageRating: engine.RoundRating(avgRating),
		ReviewCount:   reviewCount,
	}, nil
}

// ==================== HELPER METHODS ====================

// buildReviewPage assembles the paginated envelope and enriches it with
// author usernames through one batch lookup for the whole page.
func (s *reviewService) buildReviewPage(ctx context.Context, reviews []*entity.Review, page, limit int, total int64) (*response.PaginatedResponse[response.ReviewResponse], error) {
	users := s.lookupAuthors(ctx, reviews)

	resultPage := engine.NewPage(reviews, page, limit, total)

	return response.NewPaginatedResponse(resultPage, limit, func(review *entity.Review) response.ReviewResponse {
		username := ""
		if user, ok := users[review.UserID]; ok {
			username = user.Username
		}
		return response.ReviewToResponse(review, username)
	}), nil
}

// lookupAuthors fetches the author profiles for a set of reviews in one
// round-trip. A failed or partial lookup leaves reviews unenriched rather
// than failing the page.
func (s *reviewService) lookupAuthors(ctx context.Context, reviews []*entity.Review) map[uuid.UUID]*entity.User {
	seen := make(map[uuid.UUID]struct{}, len(reviews))
	ids := make([]uuid.UUID, 0, len(reviews))
	for _, review := range reviews {
		if _, ok := seen[review.UserID]; !ok {
			seen[review.UserID] = struct{}{}
			ids = append(ids, review.UserID)
		}
	}

	users, err := s.repo.User.FindByIDs(ctx, ids)
	if err != nil {
		s.log.Warn("Failed to batch-load review authors", zap.Error(err), zap.Int("count", len(ids)))
		return map[uuid.UUID]*entity.User{}
	}
	return users
}

func (s *reviewService) buildReviewResponse(ctx context.Context, review *entity.Review) *response.ReviewResponse {
	users := s.lookupAuthors(ctx, []*entity.Review{review})

	username := ""
	if user, ok := users[review.UserID]; ok {
		username = user.Username
	}

	reviewResp := response.ReviewToResponse(review, username)
	return &reviewResp
}

func (s *reviewService) invalidateMovieStats(ctx context.Context, movieID uuid.UUID) {
	s.cache.Delete(ctx, movieDetailCacheKey(movieID))
}
