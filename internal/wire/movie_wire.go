package wire

import (
	"moviehub/internal/adaptor"
	"moviehub/pkg/middleware"
	"moviehub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/movies - Browse the catalog with filters and sorting
	r.Get("/api/movies", movieHandler.ListMovies)

	// GET /api/movies/search - Filtered search, requires at least one filter
	r.Get("/api/movies/search", movieHandler.SearchMovies)

	// GET /api/movies/{id} - Movie detail with review statistics
	r.Get("/api/movies/{id}", movieHandler.GetMovie)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		// POST /api/movies - Add a movie to the catalog
		r.Post("/api/movies", movieHandler.CreateMovie)

		// PUT /api/movies/{id} - Update catalog fields
		r.Put("/api/movies/{id}", movieHandler.UpdateMovie)

		// DELETE /api/movies/{id} - Remove a movie and its reviews
		r.Delete("/api/movies/{id}", movieHandler.DeleteMovie)
	})
}
