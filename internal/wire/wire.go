// internal/wire/wire.go
package wire

import (
	"net/http"

	"moviehub/internal/adaptor"
	"moviehub/internal/data/repository"
	"moviehub/internal/gateway/upstream"
	"moviehub/internal/usecase"
	"moviehub/pkg/cache"
	"moviehub/pkg/middleware"
	"moviehub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled application.
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies.
func Wiring(repo *repository.Repository, c *cache.Cache, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, c, config, logger)
	gateway := upstream.NewClient(config.Upstream, logger)
	handler := adaptor.NewHandler(service, gateway, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router.
func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth)
	wireMovie(r, handler.Movie, config, logger)
	wireReview(r, handler.Review, config, logger)
	wireUpstream(r, handler.Upstream)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
