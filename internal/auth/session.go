package auth

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/investor-insight/internal/domain"
)

const sessionKey = "auth_session"

// SessionResolver reconstructs a Session from the request's credential
// cookie. Resolution is purely cryptographic; it performs no store I/O.
type SessionResolver struct {
	codec      *TokenCodec
	cookieName string
	logger     *zap.Logger
}

// NewSessionResolver constructs a resolver.
func NewSessionResolver(codec *TokenCodec, cookieName string, logger *zap.Logger) *SessionResolver {
	return &SessionResolver{codec: codec, cookieName: cookieName, logger: logger}
}

// CookieName returns the credential cookie key.
func (r *SessionResolver) CookieName() string {
	return r.cookieName
}

// FromRequest returns the verified session, or nil. An absent cookie and an
// invalid one are both nil: "no session" is a normal outcome, and callers
// must not be able to tell the cases apart. The failure subtype is logged
// at debug level only.
func (r *SessionResolver) FromRequest(c *fiber.Ctx) *domain.Session {
	token := c.Cookies(r.cookieName)
	if token == "" {
		return nil
	}

	claims, err := r.codec.Verify(token)
	if err != nil {
		r.logger.Debug("credential rejected", zap.Error(err))
		return nil
	}

	return &domain.Session{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   claims.Role,
	}
}

// StoreSession stashes the session for downstream handlers.
func StoreSession(c *fiber.Ctx, s *domain.Session) {
	c.Locals(sessionKey, s)
}

// SessionFromContext retrieves the session stored by the route middleware.
func SessionFromContext(c *fiber.Ctx) (*domain.Session, bool) {
	val := c.Locals(sessionKey)
	if val == nil {
		return nil, false
	}
	session, ok := val.(*domain.Session)
	return session, ok
}
