package request

// TokenRequest carries an identity already authenticated by the external
// identity provider; no credential check happens server-side.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}
