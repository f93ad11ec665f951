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

// wireUser configures the user roster routes
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// PUT /users/{email} - register-or-noop on first login
	r.Put("/users/{email}", userHandler.Register)

	// GET /users/{email} - role lookup for client-side gating
	r.Get("/users/{email}", userHandler.GetByEmail)

	// GET /popular-instructors - top instructors (public)
	r.Get("/popular-instructors", userHandler.GetPopularInstructors)

	// ==================== ADMIN ROUTES ====================
	// Roster management requires a valid token AND the admin role
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.RequireRole(repo.User, entity.RoleAdmin, log))

		// GET /admin/manage-users?page=1&per_page=10
		r.Get("/manage-users", userHandler.GetAllUsers)

		// PATCH /admin/make-admin/{id}
		r.Patch("/make-admin/{id}", userHandler.MakeAdmin)

		// PATCH /admin/make-instructor/{id}
		r.Patch("/make-instructor/{id}", userHandler.MakeInstructor)
	})
}
