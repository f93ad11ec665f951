package adaptor

import (
	"encoding/json"
	"net/http"

	"language-school/internal/data/entity"
	"language-school/internal/dto/request"
	"language-school/internal/usecase"
	"language-school/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// Register handles PUT /users/{email} (public)
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		utils.ResponseBadRequest(w, "Email is required", nil)
		return
	}

	var req request.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.RegisterOrFetch(r.Context(), email, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "register user")
		return
	}

	if !result.Created {
		utils.ResponseSuccess(w, "user already exists", result)
		return
	}

	utils.ResponseCreated(w, "success", result)
}

// GetByEmail handles GET /users/{email} (public, used for client-side gating)
func (h *UserHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		utils.ResponseBadRequest(w, "Email is required", nil)
		return
	}

	user, err := h.service.GetByEmail(r.Context(), email)
	if err != nil {
		handleServiceError(w, h.log, err, "get user")
		return
	}

	utils.ResponseSuccess(w, "success", user)
}

// GetAllUsers handles GET /admin/manage-users (admin only)
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{
		Page:    1,
		PerPage: 10,
	}

	query := r.URL.Query()
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 10)

	users, err := h.service.GetAllUsers(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get all users")
		return
	}

	utils.ResponseSuccess(w, "success", users)
}

// MakeAdmin handles PATCH /admin/make-admin/{id} (admin only)
func (h *UserHandler) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	h.promote(w, r, entity.RoleAdmin)
}

// MakeInstructor handles PATCH /admin/make-instructor/{id} (admin only)
func (h *UserHandler) MakeInstructor(w http.ResponseWriter, r *http.Request) {
	h.promote(w, r, entity.RoleInstructor)
}

func (h *UserHandler) promote(w http.ResponseWriter, r *http.Request, role entity.UserRole) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	if err := h.service.Promote(r.Context(), userID, role); err != nil {
		handleServiceError(w, h.log, err, "promote user")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetPopularInstructors handles GET /popular-instructors (public)
func (h *UserHandler) GetPopularInstructors(w http.ResponseWriter, r *http.Request) {
	instructors, err := h.service.GetPopularInstructors(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get popular instructors")
		return
	}

	utils.ResponseSuccess(w, "success", instructors)
}
