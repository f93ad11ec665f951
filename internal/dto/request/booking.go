package request

// CreateBookingRequest links the calling student to a class. The student
// email comes from the verified token, not the body.
type CreateBookingRequest struct {
	ClassID      string  `json:"class_id" validate:"required,uuid4"`
	StudentName  string  `json:"student_name" validate:"required"`
	StudentPhoto *string `json:"student_photo,omitempty"`
}
