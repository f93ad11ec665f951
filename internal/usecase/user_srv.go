package usecase

import (
	"context"
	"fmt"
	"time"

	"language-school/internal/data/entity"
	"language-school/internal/data/repository"
	"language-school/internal/dto/request"
	"language-school/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// popularLimit caps the "popular" listings (classes and instructors)
const popularLimit = 6

type UserService interface {
	RegisterOrFetch(ctx context.Context, email string, req *request.RegisterUserRequest) (*response.RegisterResponse, error)
	GetByEmail(ctx context.Context, email string) (*response.UserResponse, error)
	GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	Promote(ctx context.Context, userID string, role entity.UserRole) error
	GetPopularInstructors(ctx context.Context) ([]response.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

// RegisterOrFetch is upsert-if-absent by email. Re-registering an existing
// email is a no-op success that leaves the stored profile untouched.
func (us *userService) RegisterOrFetch(ctx context.Context, email string, req *request.RegisterUserRequest) (*response.RegisterResponse, error) {
	existing, err := us.userRepo.FindByEmail(ctx, email)
	if err != nil {
		us.log.Error("Failed to check existing user", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	if existing != nil {
		return &response.RegisterResponse{
			Created: false,
			User:    response.UserToResponse(existing),
		}, nil
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     req.Name,
		Email:    email,
		PhotoURL: req.PhotoURL,
		Role:     entity.RoleStudent,
	}

	if err := us.userRepo.Create(ctx, user); err != nil {
		us.log.Error("Failed to create user", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("create user: %w", err)
	}

	us.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", email),
	)

	return &response.RegisterResponse{
		Created: true,
		User:    response.UserToResponse(user),
	}, nil
}

func (us *userService) GetByEmail(ctx context.Context, email string) (*response.UserResponse, error) {
	user, err := us.userRepo.FindByEmail(ctx, email)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", email, repository.ErrNotFound)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	users, err := us.userRepo.FindAll(ctx, limit, offset)
	if err != nil {
		us.log.Error("Failed to get all users", zap.Error(err),
			zap.Int("page", req.Page), zap.Int("per_page", req.PerPage))
		return nil, fmt.Errorf("get all users: %w", err)
	}

	total, err := us.userRepo.CountAll(ctx)
	if err != nil {
		us.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("count users: %w", err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(userResponses, req.Page, req.PerPage, total), nil
}

// Promote overwrites the role. The previous role is not checked; promoting
// an admin to instructor (or the same role again) just writes the field.
func (us *userService) Promote(ctx context.Context, userID string, role entity.UserRole) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	if err := us.userRepo.UpdateRole(ctx, id, role); err != nil {
		return err
	}

	us.log.Info("User promoted",
		zap.String("user_id", userID),
		zap.String("role", string(role)),
	)
	return nil
}

func (us *userService) GetPopularInstructors(ctx context.Context) ([]response.UserResponse, error) {
	instructors, err := us.userRepo.FindByRole(ctx, entity.RoleInstructor, popularLimit)
	if err != nil {
		us.log.Error("Failed to get popular instructors", zap.Error(err))
		return nil, fmt.Errorf("get popular instructors: %w", err)
	}

	out := make([]response.UserResponse, len(instructors))
	for i, user := range instructors {
		out[i] = response.UserToResponse(user)
	}
	return out, nil
}
