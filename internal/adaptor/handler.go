package adaptor

import (
	"errors"
	"net/http"

	"moviehub/internal/dto/request"
	"moviehub/internal/gateway/upstream"
	"moviehub/internal/usecase"
	"moviehub/pkg/apperrors"
	"moviehub/pkg/utils"

	"go.uber.org/zap"
)

// Handler aggregates all HTTP handlers.
type Handler struct {
	Auth     *AuthHandler
	Movie    *MovieHandler
	Review   *ReviewHandler
	Upstream *UpstreamHandler
}

func NewHandler(service *usecase.Service, gateway *upstream.Client, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Movie:    NewMovieHandler(service.Movie, log),
		Review:   NewReviewHandler(service.Review, log),
		Upstream: NewUpstreamHandler(gateway, log),
	}
}

// respondServiceError maps service errors to HTTP responses. Every handler
// funnels non-validation failures through here so a given error kind always
// produces the same status code.
func respondServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidArgument):
		log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, apperrors.ErrUnauthenticated):
		log.Warn(operation+" failed - unauthenticated", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, apperrors.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, apperrors.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, apperrors.ErrDuplicateReview), errors.Is(err, apperrors.ErrDuplicateUser):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, apperrors.ErrUpstreamUnavailable):
		log.Warn(operation+" failed - upstream unavailable", zap.Error(err))
		utils.ResponseBadGateway(w, "Upstream service unavailable")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// parsePagination reads page and per_page from query parameters. Missing or
// malformed values fall back to the defaults and oversized per_page is
// clamped, so pagination input never fails a request.
func parsePagination(r *http.Request) *request.PaginatedRequest {
	query := r.URL.Query()

	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}
	if req.PerPage > 100 {
		req.PerPage = 100
	}

	return req
}
