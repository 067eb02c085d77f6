package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/investor-insight/internal/domain"
	"github.com/spec-kit/investor-insight/internal/observability"
	apperrors "github.com/spec-kit/investor-insight/pkg/util"
)

// Access classifies what a path demands before a handler may run.
type Access int

const (
	AccessPublic Access = iota
	AccessAuthenticated
	AccessAdmin
)

// Routes is the route table the middleware enforces. Public prefixes are
// checked first so unauthenticated traffic never pays for token
// verification. Admin prefixes take precedence over the authenticated
// default.
type Routes struct {
	Public      []string
	Admin       []string
	SignInPath  string
	LandingPath string
}

// DefaultRoutes mirrors the dashboard's route layout.
func DefaultRoutes() Routes {
	return Routes{
		Public: []string{
			"/",
			"/api/auth/signin",
			"/api/auth/signup",
			"/api/auth/signout",
			"/health",
			"/metrics",
		},
		Admin:       []string{"/admin", "/api/admin", "/api/auth/test-admin"},
		SignInPath:  "/",
		LandingPath: "/portfolio",
	}
}

// Classify resolves the access level for a path.
func (r Routes) Classify(path string) Access {
	for _, p := range r.Public {
		if matchesPrefix(path, p) {
			return AccessPublic
		}
	}
	for _, p := range r.Admin {
		if matchesPrefix(path, p) {
			return AccessAdmin
		}
	}
	return AccessAuthenticated
}

// matchesPrefix treats entries as whole path segments: "/admin" covers
// "/admin" and "/admin/users" but not "/administrator". "/" only matches
// exactly.
func matchesPrefix(path, prefix string) bool {
	if prefix == "/" {
		return path == "/"
	}
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// RouteMiddleware enforces the route table ahead of every handler. It runs
// once per request with no retries and performs no store I/O.
type RouteMiddleware struct {
	resolver *SessionResolver
	routes   Routes
	metrics  *observability.Metrics
	logger   *zap.Logger
}

// NewRouteMiddleware constructs the middleware.
func NewRouteMiddleware(resolver *SessionResolver, routes Routes, metrics *observability.Metrics, logger *zap.Logger) *RouteMiddleware {
	return &RouteMiddleware{resolver: resolver, routes: routes, metrics: metrics, logger: logger}
}

// Handle classifies the path, resolves the session and enforces the gate.
// Pages redirect; API calls get structured 401/403 bodies.
func (m *RouteMiddleware) Handle(c *fiber.Ctx) error {
	path := c.Path()

	access := m.routes.Classify(path)
	if access == AccessPublic {
		return c.Next()
	}

	session := m.resolver.FromRequest(c)

	allowed := []domain.Role{domain.RoleUser, domain.RoleAdmin}
	if access == AccessAdmin {
		allowed = []domain.Role{domain.RoleAdmin}
	}

	switch err := Check(session, allowed...); {
	case errors.Is(err, ErrUnauthenticated):
		m.metrics.RecordAuthOutcome("unauthenticated")
		if isAPIPath(path) {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Redirect(m.routes.SignInPath, fiber.StatusFound)
	case errors.Is(err, ErrForbidden):
		m.metrics.RecordAuthOutcome("forbidden")
		m.logger.Debug("role gate denied",
			zap.String("path", path),
			zap.String("role", string(session.Role)),
		)
		if isAPIPath(path) {
			return apperrors.NewForbidden("admin access required")
		}
		// The caller is signed in, just lacking the role. Send them to
		// the landing page rather than back to sign-in.
		return c.Redirect(m.routes.LandingPath, fiber.StatusFound)
	}

	m.metrics.RecordAuthOutcome("allowed")
	StoreSession(c, session)
	return c.Next()
}

func isAPIPath(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}
