package request

type RegisterUserRequest struct {
	Name     string  `json:"name" validate:"required"`
	PhotoURL *string `json:"photo_url,omitempty"`
}
