package request

type SubmitClassRequest struct {
	Name            string  `json:"name" validate:"required"`
	InstructorName  string  `json:"instructor_name" validate:"required"`
	InstructorEmail string  `json:"instructor_email" validate:"required,email"`
	Image           *string `json:"image,omitempty"`
	Price           float64 `json:"price" validate:"min=0"`
	TotalSeats      int     `json:"total_seats" validate:"required,min=1"`
}

type FeedbackRequest struct {
	Feedback string `json:"feedback" validate:"required"`
}
