package response

import (
	"time"

	"language-school/internal/data/entity"
)

type BookingResponse struct {
	ID            string               `json:"id"`
	ClassID       string               `json:"class_id"`
	PaymentStatus entity.PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time            `json:"created_at"`
}

// CreateBookingResponse reports the informational already-booked case
// alongside the created booking; a duplicate is not an error.
type CreateBookingResponse struct {
	AlreadyBooked bool             `json:"already_booked"`
	Booking       *BookingResponse `json:"booking,omitempty"`
}

// SelectedClassResponse is an unpaid booking enriched with its class:
// everything a student needs to review the cart before paying.
type SelectedClassResponse struct {
	BookingID        string               `json:"booking_id"`
	PaymentStatus    entity.PaymentStatus `json:"payment_status"`
	ClassID          string               `json:"class_id"`
	ClassName        string               `json:"class_name"`
	Image            *string              `json:"image,omitempty"`
	InstructorName   string               `json:"instructor_name"`
	InstructorEmail  string               `json:"instructor_email"`
	AvailableSeats   int                  `json:"available_seats"`
	EnrolledStudents int                  `json:"enrolled_students"`
	Price            float64              `json:"price"`
}

// PaymentResponse mirrors the two writes of the payment protocol.
type PaymentResponse struct {
	ClassUpdated   bool `json:"class_updated"`
	BookingUpdated bool `json:"booking_updated"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:            booking.ID.String(),
		ClassID:       booking.ClassID.String(),
		PaymentStatus: booking.PaymentStatus,
		CreatedAt:     booking.CreatedAt,
	}
}
