package wire

import (
	"moviehub/internal/adaptor"
	"moviehub/pkg/middleware"
	"moviehub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/reviews/{id} - View a single review
	r.Get("/api/reviews/{id}", reviewHandler.GetReview)

	// GET /api/movies/{id}/reviews - View movie reviews, newest first
	r.Get("/api/movies/{id}/reviews", reviewHandler.GetMovieReviews)

	// GET /api/movies/{id}/review-stats - Average rating and review count
	r.Get("/api/movies/{id}/review-stats", reviewHandler.GetMovieReviewStats)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		// POST /api/reviews - Create review, one per user per movie
		r.Post("/api/reviews", reviewHandler.CreateReview)

		// GET /api/user/reviews - View the caller's own reviews
		r.Get("/api/user/reviews", reviewHandler.GetUserReviews)

		// GET /api/movies/{id}/my-review - The caller's review for a movie
		r.Get("/api/movies/{id}/my-review", reviewHandler.GetMyMovieReview)

		// PUT /api/reviews/{id} - Update review (owner only)
		r.Put("/api/reviews/{id}", reviewHandler.UpdateReview)

		// DELETE /api/reviews/{id} - Delete review (owner only)
		r.Delete("/api/reviews/{id}", reviewHandler.DeleteReview)
	})
}
