package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"language-school/internal/data/entity"
	"language-school/internal/data/repository"
	"language-school/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestSubmitClassDefaults(t *testing.T) {
	classes := newFakeClassRepo()
	svc := NewClassService(classes, zap.NewNop())

	resp, err := svc.Submit(context.Background(), &request.SubmitClassRequest{
		Name:            "German A1",
		InstructorName:  "Hans Becker",
		InstructorEmail: "hans@example.com",
		Price:           30,
		TotalSeats:      12,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if resp.Status != entity.ClassStatusPending {
		t.Errorf("status = %s, want pending", resp.Status)
	}
	if resp.AvailableSeats != 12 {
		t.Errorf("available seats = %d, want 12", resp.AvailableSeats)
	}
	if resp.EnrolledStudents != 0 {
		t.Errorf("enrolled students = %d, want 0", resp.EnrolledStudents)
	}
}

func TestSetStatusIdempotent(t *testing.T) {
	classes := newFakeClassRepo()
	svc := NewClassService(classes, zap.NewNop())
	ctx := context.Background()

	resp, err := svc.Submit(ctx, &request.SubmitClassRequest{
		Name:            "French B2",
		InstructorName:  "Claire Dubois",
		InstructorEmail: "claire@example.com",
		Price:           55,
		TotalSeats:      8,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	// Approving twice is a no-op success
	for i := 0; i < 2; i++ {
		if err := svc.SetStatus(ctx, resp.ID, entity.ClassStatusApproved); err != nil {
			t.Fatalf("approve attempt %d: %v", i+1, err)
		}
	}

	got, err := svc.GetByID(ctx, resp.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != entity.ClassStatusApproved {
		t.Errorf("status = %s, want approved", got.Status)
	}
}

func TestSetStatusUnknownClass(t *testing.T) {
	svc := NewClassService(newFakeClassRepo(), zap.NewNop())

	err := svc.SetStatus(context.Background(), uuid.NewString(), entity.ClassStatusApproved)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSendFeedback(t *testing.T) {
	classes := newFakeClassRepo()
	svc := NewClassService(classes, zap.NewNop())
	ctx := context.Background()

	resp, err := svc.Submit(ctx, &request.SubmitClassRequest{
		Name:            "Italian A2",
		InstructorName:  "Marco Rossi",
		InstructorEmail: "marco@example.com",
		Price:           40,
		TotalSeats:      10,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := svc.SendFeedback(ctx, resp.ID, &request.FeedbackRequest{Feedback: "needs a syllabus"}); err != nil {
		t.Fatalf("send feedback: %v", err)
	}

	got, _ := svc.GetByID(ctx, resp.ID)
	if got.Feedback == nil || *got.Feedback != "needs a syllabus" {
		t.Errorf("feedback = %v, want %q", got.Feedback, "needs a syllabus")
	}
}

// Ten approved classes with distinct enrollments: popular must return
// exactly six, sorted by enrollment descending.
func TestGetPopularTopSixDescending(t *testing.T) {
	classes := newFakeClassRepo()
	svc := NewClassService(classes, zap.NewNop())
	ctx := context.Background()

	now := time.Now()
	for i := 0; i < 10; i++ {
		class := &entity.Class{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Name:             fmt.Sprintf("Class %d", i),
			InstructorName:   "Instructor",
			InstructorEmail:  "instructor@example.com",
			Price:            20,
			TotalSeats:       30,
			AvailableSeats:   30 - i,
			EnrolledStudents: i,
			Status:           entity.ClassStatusApproved,
		}
		if err := classes.Create(ctx, class); err != nil {
			t.Fatalf("seed class %d: %v", i, err)
		}
	}

	// A pending class with huge enrollment must not appear
	pending := &entity.Class{
		Base:             entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:             "Pending",
		InstructorName:   "Instructor",
		InstructorEmail:  "instructor@example.com",
		TotalSeats:       100,
		EnrolledStudents: 99,
		AvailableSeats:   1,
		Status:           entity.ClassStatusPending,
	}
	if err := classes.Create(ctx, pending); err != nil {
		t.Fatalf("seed pending class: %v", err)
	}

	popular, err := svc.GetPopular(ctx)
	if err != nil {
		t.Fatalf("get popular: %v", err)
	}

	if len(popular) != 6 {
		t.Fatalf("expected 6 popular classes, got %d", len(popular))
	}
	for i := 0; i < len(popular)-1; i++ {
		if popular[i].EnrolledStudents < popular[i+1].EnrolledStudents {
			t.Errorf("popular[%d].enrolled = %d < popular[%d].enrolled = %d; want descending",
				i, popular[i].EnrolledStudents, i+1, popular[i+1].EnrolledStudents)
		}
	}
	if popular[0].EnrolledStudents != 9 {
		t.Errorf("top class enrolled = %d, want 9", popular[0].EnrolledStudents)
	}
	for _, c := range popular {
		if c.Status != entity.ClassStatusApproved {
			t.Errorf("popular list contains %s class %q", c.Status, c.Name)
		}
	}
}
