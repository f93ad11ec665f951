package wire

import (
	"language-school/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// ==================== PUBLIC ROUTES ====================
	// POST /jwt - issue credential for an identity the external provider
	// already authenticated
	r.Post("/jwt", authHandler.IssueToken)
}
