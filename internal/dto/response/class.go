package response

import (
	"time"

	"language-school/internal/data/entity"
)

type ClassResponse struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	InstructorName   string             `json:"instructor_name"`
	InstructorEmail  string             `json:"instructor_email"`
	Image            *string            `json:"image,omitempty"`
	Price            float64            `json:"price"`
	TotalSeats       int                `json:"total_seats"`
	AvailableSeats   int                `json:"available_seats"`
	EnrolledStudents int                `json:"enrolled_students"`
	Status           entity.ClassStatus `json:"status"`
	Feedback         *string            `json:"feedback,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
}

func ClassToResponse(class *entity.Class) ClassResponse {
	return ClassResponse{
		ID:               class.ID.String(),
		Name:             class.Name,
		InstructorName:   class.InstructorName,
		InstructorEmail:  class.InstructorEmail,
		Image:            class.Image,
		Price:            class.Price,
		TotalSeats:       class.TotalSeats,
		AvailableSeats:   class.AvailableSeats,
		EnrolledStudents: class.EnrolledStudents,
		Status:           class.Status,
		Feedback:         class.Feedback,
		CreatedAt:        class.CreatedAt,
	}
}

func ClassesToResponse(classes []*entity.Class) []ClassResponse {
	out := make([]ClassResponse, len(classes))
	for i, class := range classes {
		out[i] = ClassToResponse(class)
	}
	return out
}
