package entity

type ClassStatus string

const (
	ClassStatusPending  ClassStatus = "pending"
	ClassStatusApproved ClassStatus = "approved"
	ClassStatusDenied   ClassStatus = "denied"
)

// Class seat counters obey one invariant for the life of the record:
// available_seats + enrolled_students == total_seats. Seats only move
// between the two counters, never created or destroyed.
type Class struct {
	Base
	Name             string      `db:"name"`
	InstructorName   string      `db:"instructor_name"`
	InstructorEmail  string      `db:"instructor_email"`
	Image            *string     `db:"image"`
	Price            float64     `db:"price"`
	TotalSeats       int         `db:"total_seats"`
	AvailableSeats   int         `db:"available_seats"`
	EnrolledStudents int         `db:"enrolled_students"`
	Status           ClassStatus `db:"status"`
	Feedback         *string     `db:"feedback"`
}
