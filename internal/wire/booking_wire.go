package wire

import (
	"language-school/internal/adaptor"
	"language-school/internal/data/entity"
	"language-school/internal/data/repository"
	"language-school/pkg/middleware"
	"language-school/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireBooking configures the booking and payment routes
func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== STUDENT ROUTES ====================
	// Every booking operation requires a valid token AND the student role
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.RequireRole(repo.User, entity.RoleStudent, log))

		// POST /book-a-class - create unpaid booking
		r.Post("/book-a-class", bookingHandler.Create)

		// PATCH /make-payment/{bookingId}?classId=.. - pay and enroll
		r.Patch("/make-payment/{bookingId}", bookingHandler.Pay)

		// DELETE /delete-booking/{id} - remove an unpaid booking
		r.Delete("/delete-booking/{id}", bookingHandler.Delete)

		// GET /my-selected-classes/{email} - unpaid bookings joined with class
		r.Get("/my-selected-classes/{email}", bookingHandler.GetSelected)

		// GET /my-enrolled-classes/{email} - paid bookings
		r.Get("/my-enrolled-classes/{email}", bookingHandler.GetEnrolled)
	})
}
