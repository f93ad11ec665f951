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

// wireClass configures the class lifecycle routes
func wireClass(
	r chi.Router,
	classHandler *adaptor.ClassHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /classes/approved - browse approved classes
	r.Get("/classes/approved", classHandler.GetApproved)

	// GET /popular-classes - top 6 by enrollment
	r.Get("/popular-classes", classHandler.GetPopular)

	// ==================== INSTRUCTOR ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.RequireRole(repo.User, entity.RoleInstructor, log))

		// POST /add-a-class - submit a class proposal (status=pending)
		r.Post("/add-a-class", classHandler.Submit)

		// GET /my-classes/{email} - instructor's own classes
		r.Get("/my-classes/{email}", classHandler.GetByInstructor)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.RequireRole(repo.User, entity.RoleAdmin, log))

		// GET /classes - every class, for moderation
		r.Get("/classes", classHandler.GetAll)

		// PATCH /admin/approve-class/{id}
		r.Patch("/admin/approve-class/{id}", classHandler.Approve)

		// PATCH /admin/deny-class/{id}
		r.Patch("/admin/deny-class/{id}", classHandler.Deny)

		// PATCH /admin/send-feedback/{id}
		r.Patch("/admin/send-feedback/{id}", classHandler.SendFeedback)
	})
}
