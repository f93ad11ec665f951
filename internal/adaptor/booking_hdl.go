package adaptor

import (
	"encoding/json"
	"net/http"

	"language-school/internal/dto/request"
	"language-school/internal/usecase"
	"language-school/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// Create handles POST /book-a-class (student only)
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	email, ok := utils.GetEmailFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.Create(r.Context(), email, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	// A duplicate is informational, not an error
	if result.AlreadyBooked {
		utils.ResponseSuccess(w, "class already booked", result)
		return
	}

	utils.ResponseCreated(w, "success", result)
}

// Delete handles DELETE /delete-booking/{id} (student only, unpaid bookings)
func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), bookingID); err != nil {
		handleServiceError(w, h.log, err, "delete booking")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// Pay handles PATCH /make-payment/{bookingId}?classId=.. (student only)
func (h *BookingHandler) Pay(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingId")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	classID := r.URL.Query().Get("classId")
	if classID == "" {
		utils.ResponseBadRequest(w, "classId query parameter is required", nil)
		return
	}

	payment, err := h.service.PayAndEnroll(r.Context(), bookingID, classID)
	if err != nil {
		handleServiceError(w, h.log, err, "make payment")
		return
	}

	utils.ResponseSuccess(w, "success", payment)
}

// GetSelected handles GET /my-selected-classes/{email} (student only)
func (h *BookingHandler) GetSelected(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		utils.ResponseBadRequest(w, "Email is required", nil)
		return
	}

	selected, err := h.service.GetSelectedClasses(r.Context(), email)
	if err != nil {
		handleServiceError(w, h.log, err, "get selected classes")
		return
	}

	utils.ResponseSuccess(w, "success", selected)
}

// GetEnrolled handles GET /my-enrolled-classes/{email} (student only)
func (h *BookingHandler) GetEnrolled(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		utils.ResponseBadRequest(w, "Email is required", nil)
		return
	}

	enrolled, err := h.service.GetEnrolledClasses(r.Context(), email)
	if err != nil {
		handleServiceError(w, h.log, err, "get enrolled classes")
		return
	}

	utils.ResponseSuccess(w, "success", enrolled)
}
