package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"language-school/internal/data/entity"
	"language-school/internal/data/repository"
	"language-school/internal/dto/request"
	"language-school/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	Create(ctx context.Context, studentEmail string, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error)
	Delete(ctx context.Context, bookingID string) error
	PayAndEnroll(ctx context.Context, bookingID, classID string) (*response.PaymentResponse, error)
	GetSelectedClasses(ctx context.Context, studentEmail string) ([]response.SelectedClassResponse, error)
	GetEnrolledClasses(ctx context.Context, studentEmail string) ([]response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository // booking engine also owns the class seat counters
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

// Create inserts an unpaid booking for the student. A duplicate for the
// same (student, class) pair is informational, not an error: the existing
// booking stands and the response says so. The unique index on bookings
// catches the race two near-simultaneous creates would otherwise win.
func (s *bookingService) Create(ctx context.Context, studentEmail string, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
	classID, err := uuid.Parse(req.ClassID)
	if err != nil {
		return nil, fmt.Errorf("invalid class ID format %s: %w", req.ClassID, err)
	}

	class, err := s.repo.Class.FindByID(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("find class: %w", err)
	}
	if class == nil {
		return nil, fmt.Errorf("class %s: %w", req.ClassID, repository.ErrNotFound)
	}

	exists, err := s.repo.Booking.ExistsForStudentAndClass(ctx, studentEmail, classID)
	if err != nil {
		return nil, fmt.Errorf("check existing booking: %w", err)
	}
	if exists {
		return &response.CreateBookingResponse{AlreadyBooked: true}, nil
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		StudentName:   req.StudentName,
		StudentEmail:  studentEmail,
		StudentPhoto:  req.StudentPhoto,
		ClassID:       classID,
		PaymentStatus: entity.PaymentStatusUnpaid,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrAlreadyBooked) {
			return &response.CreateBookingResponse{AlreadyBooked: true}, nil
		}
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("student_email", studentEmail),
			zap.String("class_id", req.ClassID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("student_email", studentEmail),
		zap.String("class_id", req.ClassID),
	)

	resp := response.BookingToResponse(booking)
	return &response.CreateBookingResponse{Booking: &resp}, nil
}

// Delete removes an unpaid booking. Paid bookings are not deletable
// through this path; there is no cancel-after-pay flow.
func (s *bookingService) Delete(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	return s.repo.Booking.DeleteUnpaid(ctx, id)
}

// PayAndEnroll is the payment protocol:
//
//  1. reserve a seat on the class with a single conditional update
//     (available_seats > 0 checked at write time, so concurrent payments
//     for the last seat get exactly one winner);
//  2. flip the booking unpaid -> paid, conditioned on it still being
//     unpaid;
//  3. if the flip matches nothing, release the reserved seat so the
//     capacity invariant holds.
//
// Every step is a per-record atomic write; no cross-record transaction is
// required for the invariant to survive any interleaving.
func (s *bookingService) PayAndEnroll(ctx context.Context, bookingID, classID string) (*response.PaymentResponse, error) {
	bID, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}
	cID, err := uuid.Parse(classID)
	if err != nil {
		return nil, fmt.Errorf("invalid class ID format %s: %w", classID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, repository.ErrNotFound)
	}
	if booking.ClassID != cID {
		return nil, fmt.Errorf("invalid class %s for booking %s", classID, bookingID)
	}
	// Early reject; the conditional MarkPaid below still backstops a race
	// between this read and the write.
	if booking.PaymentStatus == entity.PaymentStatusPaid {
		return nil, fmt.Errorf("booking %s: %w", bookingID, repository.ErrBookingPaid)
	}

	if err := s.repo.Class.ReserveSeat(ctx, cID); err != nil {
		if errors.Is(err, repository.ErrNoSeatsAvailable) {
			s.log.Info("Payment rejected, class full",
				zap.String("booking_id", bookingID),
				zap.String("class_id", classID),
			)
		}
		return nil, err
	}

	if err := s.repo.Booking.MarkPaid(ctx, bID); err != nil {
		// Put the seat back; without this the class would leak a seat and
		// break available + enrolled == total.
		if relErr := s.repo.Class.ReleaseSeat(ctx, cID); relErr != nil {
			s.log.Error("Failed to release seat after payment failure",
				zap.Error(relErr),
				zap.String("booking_id", bookingID),
				zap.String("class_id", classID),
			)
		}
		return nil, err
	}

	s.log.Info("Payment completed",
		zap.String("booking_id", bookingID),
		zap.String("class_id", classID),
		zap.String("student_email", booking.StudentEmail),
	)

	return &response.PaymentResponse{
		ClassUpdated:   true,
		BookingUpdated: true,
	}, nil
}

// GetSelectedClasses returns the student's unpaid bookings, each enriched
// with its class record (name, image, instructor, seats, price).
func (s *bookingService) GetSelectedClasses(ctx context.Context, studentEmail string) ([]response.SelectedClassResponse, error) {
	bookings, err := s.repo.Booking.FindByStudentAndStatus(ctx, studentEmail, entity.PaymentStatusUnpaid)
	if err != nil {
		return nil, fmt.Errorf("get selected classes for %s: %w", studentEmail, err)
	}

	selected := make([]response.SelectedClassResponse, 0, len(bookings))
	for _, booking := range bookings {
		class, err := s.repo.Class.FindByID(ctx, booking.ClassID)
		if err != nil {
			return nil, fmt.Errorf("find class for booking %s: %w", booking.ID.String(), err)
		}
		if class == nil {
			// Booking references a vanished class; skip rather than fail the list
			s.log.Warn("Booking references missing class",
				zap.String("booking_id", booking.ID.String()),
				zap.String("class_id", booking.ClassID.String()),
			)
			continue
		}

		selected = append(selected, response.SelectedClassResponse{
			BookingID:        booking.ID.String(),
			PaymentStatus:    booking.PaymentStatus,
			ClassID:          class.ID.String(),
			ClassName:        class.Name,
			Image:            class.Image,
			InstructorName:   class.InstructorName,
			InstructorEmail:  class.InstructorEmail,
			AvailableSeats:   class.AvailableSeats,
			EnrolledStudents: class.EnrolledStudents,
			Price:            class.Price,
		})
	}

	return selected, nil
}

// GetEnrolledClasses returns the student's paid bookings. Student identity
// fields are already in the caller's token and class capacity is not the
// student's concern, so the projection excludes both.
func (s *bookingService) GetEnrolledClasses(ctx context.Context, studentEmail string) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByStudentAndStatus(ctx, studentEmail, entity.PaymentStatusPaid)
	if err != nil {
		return nil, fmt.Errorf("get enrolled classes for %s: %w", studentEmail, err)
	}

	out := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		out[i] = response.BookingToResponse(booking)
	}
	return out, nil
}
