package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/investor-insight/internal/domain"
)

func TestCheck_NoSession(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, Check(nil, domain.RoleUser), ErrUnauthenticated)
	assert.ErrorIs(t, Check(nil, domain.RoleAdmin), ErrUnauthenticated)
}

func TestCheck_ExactMatch(t *testing.T) {
	t.Parallel()

	user := &domain.Session{UserID: "u1", Role: domain.RoleUser}
	admin := &domain.Session{UserID: "a1", Role: domain.RoleAdmin}

	assert.NoError(t, Check(user, domain.RoleUser))
	assert.NoError(t, Check(admin, domain.RoleAdmin))
	assert.ErrorIs(t, Check(user, domain.RoleAdmin), ErrForbidden)
}

func TestCheck_NoRoleHierarchy(t *testing.T) {
	t.Parallel()

	admin := &domain.Session{UserID: "a1", Role: domain.RoleAdmin}

	// Membership is exact: admin does not implicitly pass a gate that only
	// lists user.
	assert.ErrorIs(t, Check(admin, domain.RoleUser), ErrForbidden)
	assert.NoError(t, Check(admin, domain.RoleUser, domain.RoleAdmin))
}

func TestCheck_SetMembership(t *testing.T) {
	t.Parallel()

	user := &domain.Session{UserID: "u1", Role: domain.RoleUser}

	assert.NoError(t, Check(user, domain.RoleAdmin, domain.RoleUser))
	assert.ErrorIs(t, Check(user), ErrForbidden)
}
