package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spec-kit/investor-insight/internal/api/http/handlers"
	"github.com/spec-kit/investor-insight/internal/auth"
	"github.com/spec-kit/investor-insight/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health          *handlers.HealthHandler
	Auth            *handlers.AuthHandler
	Admin           *handlers.AdminHandler
	Startups        *handlers.StartupsHandler
	RouteMiddleware *auth.RouteMiddleware
	Metrics         *observability.Metrics
}

// RegisterRoutes wires HTTP routes. The route middleware runs ahead of
// every handler; path classification decides what each request needs.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(cfg.RouteMiddleware.Handle)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"service": "investor-insight"})
	})

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Metrics.Registry(), promhttp.HandlerOpts{})))

	authGroup := app.Group("/api/auth")
	authGroup.Post("/signin", cfg.Auth.SignIn)
	authGroup.Post("/signup", cfg.Auth.SignUp)
	authGroup.Post("/signout", cfg.Auth.SignOut)
	authGroup.Get("/me", cfg.Auth.Me)
	authGroup.Get("/test-admin", cfg.Auth.TestAdmin)

	adminGroup := app.Group("/api/admin")
	adminGroup.Get("/users", cfg.Admin.ListUsers)
	adminGroup.Patch("/users/:id/role", cfg.Admin.ChangeRole)
	adminGroup.Delete("/users/:id", cfg.Admin.DeleteUser)

	startupGroup := app.Group("/api/startups")
	startupGroup.Get("/", cfg.Startups.List)
	startupGroup.Get("/:name", cfg.Startups.Get)
}
