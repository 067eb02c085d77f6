package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/investor-insight/internal/domain"
	"github.com/spec-kit/investor-insight/internal/repository"
	apperrors "github.com/spec-kit/investor-insight/pkg/util"
)

// AdminService backs the admin dashboard's user management surface.
type AdminService struct {
	users repository.UserRepository
}

// NewAdminService builds the service.
func NewAdminService(users repository.UserRepository) *AdminService {
	return &AdminService{users: users}
}

// ListUsers returns all accounts projected to their public fields.
func (s *AdminService) ListUsers(ctx context.Context) ([]domain.PublicUser, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	public := make([]domain.PublicUser, 0, len(users))
	for i := range users {
		public = append(public, users[i].Public())
	}
	return public, nil
}

// ChangeRole updates an account's role.
func (s *AdminService) ChangeRole(ctx context.Context, id string, role domain.Role) error {
	if !role.Valid() {
		return apperrors.NewValidationError("invalid role", map[string]any{"role": role})
	}
	if err := s.users.UpdateRole(ctx, id, role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return err
	}
	return nil
}

// RemoveUser deletes an account. Admins cannot remove themselves, matching
// the dashboard's guard against locking out the last administrator.
func (s *AdminService) RemoveUser(ctx context.Context, id, actorID string) error {
	if id == actorID {
		return apperrors.NewConflict("cannot remove your own account", nil)
	}
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return err
	}
	return nil
}
