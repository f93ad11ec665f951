package entity

type UserRole string

const (
	RoleStudent    UserRole = "student"
	RoleInstructor UserRole = "instructor"
	RoleAdmin      UserRole = "admin"
)

type User struct {
	Base
	Name     string   `db:"name"`
	Email    string   `db:"email"`
	PhotoURL *string  `db:"photo_url"`
	Role     UserRole `db:"role"`
}
