package wire

import (
	"moviehub/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// POST /api/auth/register - Create account and issue token
	r.Post("/api/auth/register", authHandler.Register)

	// POST /api/auth/login - Exchange credentials for token
	r.Post("/api/auth/login", authHandler.Login)
}
