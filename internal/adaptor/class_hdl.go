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

type ClassHandler struct {
	service usecase.ClassService
	log     *zap.Logger
}

func NewClassHandler(service usecase.ClassService, log *zap.Logger) *ClassHandler {
	return &ClassHandler{
		service: service,
		log:     log.With(zap.String("handler", "class")),
	}
}

// Submit handles POST /add-a-class (instructor only)
func (h *ClassHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitClassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	class, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit class")
		return
	}

	utils.ResponseCreated(w, "success", class)
}

// GetApproved handles GET /classes/approved (public)
func (h *ClassHandler) GetApproved(w http.ResponseWriter, r *http.Request) {
	classes, err := h.service.GetApproved(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get approved classes")
		return
	}

	utils.ResponseSuccess(w, "success", classes)
}

// GetAll handles GET /classes (admin only, for moderation)
func (h *ClassHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	classes, err := h.service.GetAll(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get all classes")
		return
	}

	utils.ResponseSuccess(w, "success", classes)
}

// GetByInstructor handles GET /my-classes/{email} (instructor only)
func (h *ClassHandler) GetByInstructor(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		utils.ResponseBadRequest(w, "Email is required", nil)
		return
	}

	classes, err := h.service.GetByInstructor(r.Context(), email)
	if err != nil {
		handleServiceError(w, h.log, err, "get instructor classes")
		return
	}

	utils.ResponseSuccess(w, "success", classes)
}

// GetPopular handles GET /popular-classes (public)
func (h *ClassHandler) GetPopular(w http.ResponseWriter, r *http.Request) {
	classes, err := h.service.GetPopular(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get popular classes")
		return
	}

	utils.ResponseSuccess(w, "success", classes)
}

// Approve handles PATCH /admin/approve-class/{id} (admin only)
func (h *ClassHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, entity.ClassStatusApproved)
}

// Deny handles PATCH /admin/deny-class/{id} (admin only)
func (h *ClassHandler) Deny(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, entity.ClassStatusDenied)
}

func (h *ClassHandler) setStatus(w http.ResponseWriter, r *http.Request, status entity.ClassStatus) {
	classID := chi.URLParam(r, "id")
	if classID == "" {
		utils.ResponseBadRequest(w, "Class ID is required", nil)
		return
	}

	if err := h.service.SetStatus(r.Context(), classID, status); err != nil {
		handleServiceError(w, h.log, err, "set class status")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// SendFeedback handles PATCH /admin/send-feedback/{id} (admin only)
func (h *ClassHandler) SendFeedback(w http.ResponseWriter, r *http.Request) {
	classID := chi.URLParam(r, "id")
	if classID == "" {
		utils.ResponseBadRequest(w, "Class ID is required", nil)
		return
	}

	var req request.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.SendFeedback(r.Context(), classID, &req); err != nil {
		handleServiceError(w, h.log, err, "send feedback")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
