package domain

// Session is the per-request view of an authenticated caller, reconstructed
// from a verified credential. It lives for one request and is never stored.
type Session struct {
	UserID string
	Email  string
	Role   Role
}

// IsAdmin reports whether the session carries the admin role.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
