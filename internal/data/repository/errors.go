package repository

import "errors"

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("not found")

// ErrNoSeatsAvailable is returned when a seat reservation loses to capacity.
var ErrNoSeatsAvailable = errors.New("no seats available")

// ErrAlreadyBooked is returned when a student already holds a booking for the class.
var ErrAlreadyBooked = errors.New("class already booked by this student")

// ErrBookingPaid is returned when a paid booking is paid again or deleted.
var ErrBookingPaid = errors.New("booking already paid")
