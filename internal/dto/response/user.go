package response

import (
	"time"

	"language-school/internal/data/entity"
)

type UserResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	PhotoURL  *string         `json:"photo_url,omitempty"`
	Role      entity.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
}

// RegisterResponse reports whether the upsert inserted a new user. A second
// registration for the same email leaves the stored profile untouched.
type RegisterResponse struct {
	Created bool         `json:"created"`
	User    UserResponse `json:"user"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		PhotoURL:  user.PhotoURL,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
