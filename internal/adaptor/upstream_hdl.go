package adaptor

import (
	"net/http"
	"strconv"

	"moviehub/internal/gateway/upstream"
	"moviehub/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UpstreamHandler exposes the third-party metadata API as pass-through
// endpoints. Responses keep the upstream shape.
type UpstreamHandler struct {
	client *upstream.Client
	log    *zap.Logger
}

func NewUpstreamHandler(client *upstream.Client, log *zap.Logger) *UpstreamHandler {
	return &UpstreamHandler{
		client: client,
		log:    log.With(zap.String("handler", "upstream")),
	}
}

// Popular handles GET /api/metadata/popular (public)
func (h *UpstreamHandler) Popular(w http.ResponseWriter, r *http.Request) {
	page := utils.ParseInt(r.URL.Query().Get("page"), 1)

	movies, err := h.client.Popular(r.Context(), page)
	if err != nil {
		respondServiceError(h.log, w, err, "fetch popular movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// Search handles GET /api/metadata/search (public)
func (h *UpstreamHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := utils.ParseInt(query.Get("page"), 1)

	movies, err := h.client.Search(r.Context(), query.Get("q"), page)
	if err != nil {
		respondServiceError(h.log, w, err, "search upstream movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// Details handles GET /api/metadata/movies/{id} (public)
func (h *UpstreamHandler) Details(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUpstreamID(w, r)
	if !ok {
		return
	}

	movie, err := h.client.Details(r.Context(), id)
	if err != nil {
		respondServiceError(h.log, w, err, "fetch movie details")
		return
	}

	utils.ResponseSuccess(w, "success", movie)
}

// Recommendations handles GET /api/metadata/movies/{id}/recommendations (public)
func (h *UpstreamHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUpstreamID(w, r)
	if !ok {
		return
	}
	page := utils.ParseInt(r.URL.Query().Get("page"), 1)

	movies, err := h.client.Recommendations(r.Context(), id, page)
	if err != nil {
		respondServiceError(h.log, w, err, "fetch movie recommendations")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

func parseUpstreamID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return 0, false
	}

	return id, true
}
