package usecase

import (
	"language-school/internal/data/repository"
	"language-school/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Class   ClassService
	Booking BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(config, log),
		User:    NewUserService(repo.User, log),
		Class:   NewClassService(repo.Class, log),
		Booking: NewBookingService(repo, log),
	}
}
