package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"language-school/internal/data/repository"
	"language-school/internal/usecase"
	"language-school/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Class   *ClassHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Class:   NewClassHandler(service.Class, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}

// handleServiceError maps service errors onto the response envelope.
// Sentinel errors carry the status; anything unrecognized is a 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, repository.ErrNoSeatsAvailable),
		errors.Is(err, repository.ErrBookingPaid),
		errors.Is(err, repository.ErrAlreadyBooked):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case strings.Contains(err.Error(), "invalid"):
		log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
