package adaptor

import (
	"encoding/json"
	"net/http"

	"language-school/internal/dto/request"
	"language-school/internal/usecase"
	"language-school/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// IssueToken handles POST /jwt (public)
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req request.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	token, err := h.service.IssueToken(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "issue token")
		return
	}

	utils.ResponseSuccess(w, "success", token)
}
