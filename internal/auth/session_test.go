package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/investor-insight/internal/domain"
)

// resolveOnce runs the resolver against a single request and captures what
// it yields.
func resolveOnce(t *testing.T, resolver *SessionResolver, cookie string) *domain.Session {
	t.Helper()

	var got *domain.Session
	app := fiber.New()
	app.Get("/probe", func(c *fiber.Ctx) error {
		got = resolver.FromRequest(c)
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: resolver.CookieName(), Value: cookie})
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	return got
}

func TestSessionResolver_NoCookie(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("session-secret", time.Hour)
	resolver := NewSessionResolver(codec, "auth-token", zap.NewNop())

	assert.Nil(t, resolveOnce(t, resolver, ""))
}

func TestSessionResolver_ValidCookie(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("session-secret", time.Hour)
	resolver := NewSessionResolver(codec, "auth-token", zap.NewNop())

	token, _, err := codec.Issue("user-7", "user@x.com", domain.RoleUser)
	require.NoError(t, err)

	session := resolveOnce(t, resolver, token)
	require.NotNil(t, session)
	assert.Equal(t, "user-7", session.UserID)
	assert.Equal(t, "user@x.com", session.Email)
	assert.Equal(t, domain.RoleUser, session.Role)
}

func TestSessionResolver_InvalidCookiesAllLookAlike(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("session-secret", time.Hour)
	resolver := NewSessionResolver(codec, "auth-token", zap.NewNop())

	expiredCodec := NewTokenCodec("session-secret", time.Hour)
	expiredCodec.ttl = -time.Minute
	expiredToken, _, err := expiredCodec.Issue("user-7", "user@x.com", domain.RoleUser)
	require.NoError(t, err)

	foreignCodec := NewTokenCodec("some-other-secret", time.Hour)
	foreignToken, _, err := foreignCodec.Issue("user-7", "user@x.com", domain.RoleUser)
	require.NoError(t, err)

	// Expired, tampered and garbage credentials are indistinguishable from
	// having none at all.
	for name, cookie := range map[string]string{
		"expired":  expiredToken,
		"tampered": foreignToken,
		"garbage":  "not-a-token",
	} {
		assert.Nil(t, resolveOnce(t, resolver, cookie), name)
	}
}

func TestSessionFromContext(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	app.Get("/stashed", func(c *fiber.Ctx) error {
		StoreSession(c, &domain.Session{UserID: "u1", Email: "a@x.com", Role: domain.RoleAdmin})
		session, ok := SessionFromContext(c)
		if assert.True(t, ok) {
			assert.Equal(t, "u1", session.UserID)
		}
		return c.SendStatus(http.StatusOK)
	})
	app.Get("/empty", func(c *fiber.Ctx) error {
		_, ok := SessionFromContext(c)
		assert.False(t, ok)
		return c.SendStatus(http.StatusOK)
	})

	for _, path := range []string{"/stashed", "/empty"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		resp.Body.Close()
	}
}
