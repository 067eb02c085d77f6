package dto

import "github.com/spec-kit/investor-insight/internal/domain"

// ChangeRoleRequest payload for role updates.
type ChangeRoleRequest struct {
	Role domain.Role `json:"role"`
}

// UserListResponse wraps the admin user listing.
type UserListResponse struct {
	Users []domain.PublicUser `json:"users"`
}
