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

type ClassService interface {
	Submit(ctx context.Context, req *request.SubmitClassRequest) (*response.ClassResponse, error)
	GetByID(ctx context.Context, classID string) (*response.ClassResponse, error)
	GetAll(ctx context.Context) ([]response.ClassResponse, error)
	GetApproved(ctx context.Context) ([]response.ClassResponse, error)
	GetByInstructor(ctx context.Context, email string) ([]response.ClassResponse, error)
	GetPopular(ctx context.Context) ([]response.ClassResponse, error)
	SetStatus(ctx context.Context, classID string, status entity.ClassStatus) error
	SendFeedback(ctx context.Context, classID string, req *request.FeedbackRequest) error
}

type classService struct {
	classRepo repository.ClassRepository
	log       *zap.Logger
}

func NewClassService(classRepo repository.ClassRepository, log *zap.Logger) ClassService {
	return &classService{
		classRepo: classRepo,
		log:       log.With(zap.String("service", "class")),
	}
}

// Submit inserts a new class proposal. Every class starts pending with an
// empty roster: available_seats = total_seats, enrolled_students = 0.
func (s *classService) Submit(ctx context.Context, req *request.SubmitClassRequest) (*response.ClassResponse, error) {
	now := time.Now()
	class := &entity.Class{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:             req.Name,
		InstructorName:   req.InstructorName,
		InstructorEmail:  req.InstructorEmail,
		Image:            req.Image,
		Price:            req.Price,
		TotalSeats:       req.TotalSeats,
		AvailableSeats:   req.TotalSeats,
		EnrolledStudents: 0,
		Status:           entity.ClassStatusPending,
	}

	if err := s.classRepo.Create(ctx, class); err != nil {
		s.log.Error("Failed to submit class",
			zap.Error(err),
			zap.String("name", req.Name),
			zap.String("instructor_email", req.InstructorEmail),
		)
		return nil, fmt.Errorf("submit class: %w", err)
	}

	s.log.Info("Class submitted",
		zap.String("class_id", class.ID.String()),
		zap.String("name", class.Name),
		zap.Int("total_seats", class.TotalSeats),
	)

	resp := response.ClassToResponse(class)
	return &resp, nil
}

func (s *classService) GetByID(ctx context.Context, classID string) (*response.ClassResponse, error) {
	id, err := uuid.Parse(classID)
	if err != nil {
		return nil, fmt.Errorf("invalid class ID format %s: %w", classID, err)
	}

	class, err := s.classRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find class: %w", err)
	}
	if class == nil {
		return nil, fmt.Errorf("class %s: %w", classID, repository.ErrNotFound)
	}

	resp := response.ClassToResponse(class)
	return &resp, nil
}

func (s *classService) GetAll(ctx context.Context) ([]response.ClassResponse, error) {
	classes, err := s.classRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all classes: %w", err)
	}
	return response.ClassesToResponse(classes), nil
}

func (s *classService) GetApproved(ctx context.Context) ([]response.ClassResponse, error) {
	classes, err := s.classRepo.FindByStatus(ctx, entity.ClassStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("get approved classes: %w", err)
	}
	return response.ClassesToResponse(classes), nil
}

func (s *classService) GetByInstructor(ctx context.Context, email string) ([]response.ClassResponse, error) {
	classes, err := s.classRepo.FindByInstructorEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get classes for instructor %s: %w", email, err)
	}
	return response.ClassesToResponse(classes), nil
}

func (s *classService) GetPopular(ctx context.Context) ([]response.ClassResponse, error) {
	classes, err := s.classRepo.FindPopular(ctx, popularLimit)
	if err != nil {
		return nil, fmt.Errorf("get popular classes: %w", err)
	}
	return response.ClassesToResponse(classes), nil
}

func (s *classService) SetStatus(ctx context.Context, classID string, status entity.ClassStatus) error {
	id, err := uuid.Parse(classID)
	if err != nil {
		return fmt.Errorf("invalid class ID format %s: %w", classID, err)
	}

	if err := s.classRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.log.Info("Class status updated",
		zap.String("class_id", classID),
		zap.String("status", string(status)),
	)
	return nil
}

func (s *classService) SendFeedback(ctx context.Context, classID string, req *request.FeedbackRequest) error {
	id, err := uuid.Parse(classID)
	if err != nil {
		return fmt.Errorf("invalid class ID format %s: %w", classID, err)
	}

	if err := s.classRepo.UpdateFeedback(ctx, id, req.Feedback); err != nil {
		return err
	}

	s.log.Info("Class feedback sent", zap.String("class_id", classID))
	return nil
}
