package entity

import (
	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// Booking is a student's claim on a class. unpaid -> paid is one-way;
// only unpaid bookings are deletable.
type Booking struct {
	Base
	StudentName   string        `db:"student_name"`
	StudentEmail  string        `db:"student_email"`
	StudentPhoto  *string       `db:"student_photo"`
	ClassID       uuid.UUID     `db:"class_id"`
	PaymentStatus PaymentStatus `db:"payment_status"`
}
