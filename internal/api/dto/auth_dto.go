package dto

import "github.com/spec-kit/investor-insight/internal/domain"

// SignInRequest payload for sign-in.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpRequest payload for new accounts. Role defaults to "user".
type SignUpRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// UserResponse wraps the public account fields.
type UserResponse struct {
	User domain.PublicUser `json:"user"`
}
