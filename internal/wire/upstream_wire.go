package wire

import (
	"moviehub/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUpstream(r chi.Router, upstreamHandler *adaptor.UpstreamHandler) {
	// Pass-through endpoints for the third-party metadata API (all public)
	r.Get("/api/metadata/popular", upstreamHandler.Popular)
	r.Get("/api/metadata/search", upstreamHandler.Search)
	r.Get("/api/metadata/movies/{id}", upstreamHandler.Details)
	r.Get("/api/metadata/movies/{id}/recommendations", upstreamHandler.Recommendations)
}
