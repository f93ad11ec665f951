package repository

import (
	"language-school/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Class   ClassRepository
	Booking BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Class:   NewClassRepository(db, log),
		Booking: NewBookingRepository(db, log),
	}
}
