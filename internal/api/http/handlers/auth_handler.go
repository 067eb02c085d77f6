package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/investor-insight/internal/api/dto"
	"github.com/spec-kit/investor-insight/internal/auth"
	"github.com/spec-kit/investor-insight/internal/config"
	"github.com/spec-kit/investor-insight/internal/service"
)

// AuthHandler exposes the sign-in, sign-up, sign-out and introspection
// endpoints and owns the credential cookie's attributes.
type AuthHandler struct {
	auth *service.AuthService
	cfg  config.AuthConfig
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(authService *service.AuthService, cfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{auth: authService, cfg: cfg}
}

// SignIn handles POST /api/auth/signin.
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req dto.SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	user, token, exp, err := h.auth.SignIn(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.setCredential(c, token, exp)
	return c.JSON(dto.UserResponse{User: user.Public()})
}

// SignUp handles POST /api/auth/signup.
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req dto.SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	user, token, exp, err := h.auth.SignUp(c.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}

	h.setCredential(c, token, exp)
	return c.Status(http.StatusCreated).JSON(dto.UserResponse{User: user.Public()})
}

// SignOut handles POST /api/auth/signout. Clearing is an overwrite with an
// already-expired cookie, so repeating it is harmless.
func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   h.cfg.SecureCookies,
		SameSite: fiber.CookieSameSiteStrictMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
	return c.JSON(fiber.Map{"success": true})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "not authenticated")
	}
	return c.JSON(fiber.Map{
		"user": fiber.Map{
			"id":    session.UserID,
			"email": session.Email,
			"role":  session.Role,
		},
	})
}

// TestAdmin handles GET /api/auth/test-admin. The route middleware has
// already enforced the admin role by the time this runs.
func (h *AuthHandler) TestAdmin(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": "You have admin access",
	})
}

func (h *AuthHandler) setCredential(c *fiber.Ctx, token string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   h.cfg.SecureCookies,
		SameSite: fiber.CookieSameSiteStrictMode,
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
	})
}
