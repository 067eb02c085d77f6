package auth

import (
	"errors"

	"github.com/spec-kit/investor-insight/internal/domain"
)

// Role gate outcomes. The two are distinct so callers can pick between a
// sign-in redirect (no session at all) and a forbidden response (session
// present, wrong role).
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)

// Check evaluates the session against the allowed role set. Membership is
// exact: admin does not implicitly satisfy a gate that only lists user, so
// routes open to both roles must list both.
func Check(s *domain.Session, allowed ...domain.Role) error {
	if s == nil {
		return ErrUnauthenticated
	}
	for _, role := range allowed {
		if s.Role == role {
			return nil
		}
	}
	return ErrForbidden
}
