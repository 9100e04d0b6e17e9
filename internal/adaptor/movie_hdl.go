package adaptor

import (
	"encoding/json"
	"net/http"

	"moviehub/internal/dto/request"
	"moviehub/internal/usecase"
	"moviehub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// ListMovies handles GET /api/movies (public)
func (h *MovieHandler) ListMovies(w http.ResponseWriter, r *http.Request) {
	req, ok := parseListMoviesRequest(w, r)
	if !ok {
		return
	}

	movies, err := h.service.ListMovies(r.Context(), req)
	if err != nil {
		respondServiceError(h.log, w, err, "list movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// SearchMovies handles GET /api/movies/search (public). Unlike the plain
// listing, it requires at least one filter.
func (h *MovieHandler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	req, ok := parseListMoviesRequest(w, r)
	if !ok {
		return
	}

	movies, err := h.service.SearchMovies(r.Context(), req)
	if err != nil {
		respondServiceError(h.log, w, err, "search movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// GetMovie handles GET /api/movies/{id} (public)
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	movie, err := h.service.GetMovieWithStats(r.Context(), movieID)
	if err != nil {
		respondServiceError(h.log, w, err, "get movie")
		return
	}

	utils.ResponseSuccess(w, "success", movie)
}

// CreateMovie handles POST /api/movies (protected)
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		respondServiceError(h.log, w, err, "create movie")
		return
	}

	utils.ResponseCreated(w, "success", movie)
}

// UpdateMovie handles PUT /api/movies/{id} (protected)
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	var req request.UpdateMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movie, err := h.service.UpdateMovie(r.Context(), movieID, &req)
	if err != nil {
		respondServiceError(h.log, w, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, "success", movie)
}

// DeleteMovie handles DELETE /api/movies/{id} (protected)
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	if err := h.service.DeleteMovie(r.Context(), movieID); err != nil {
		respondServiceError(h.log, w, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// parseListMoviesRequest turns the listing query parameters into the typed
// request. Malformed year or min_rating values are rejected here instead of
// silently dropped.
func parseListMoviesRequest(w http.ResponseWriter, r *http.Request) (*request.ListMoviesRequest, bool) {
	query := r.URL.Query()

	req := &request.ListMoviesRequest{
		Search:           query.Get("q"),
		Genre:            query.Get("genre"),
		SortBy:           query.Get("sort_by"),
		PaginatedRequest: *parsePagination(r),
	}

	if raw := query.Get("year"); raw != "" {
		year, ok := utils.ParseYear(raw)
		if !ok {
			utils.ResponseBadRequest(w, "Invalid year filter", nil)
			return nil, false
		}
		req.Year = &year
	}

	if raw := query.Get("min_rating"); raw != "" {
		rating, ok := utils.ParseFloat(raw)
		if !ok || rating < 0 || rating > 10 {
			utils.ResponseBadRequest(w, "Invalid min_rating filter", nil)
			return nil, false
		}
		req.MinRating = &rating
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return nil, false
	}

	return req, true
}
