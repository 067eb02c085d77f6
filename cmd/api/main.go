package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/investor-insight/internal/api/http"
	"github.com/spec-kit/investor-insight/internal/api/http/handlers"
	"github.com/spec-kit/investor-insight/internal/auth"
	"github.com/spec-kit/investor-insight/internal/config"
	"github.com/spec-kit/investor-insight/internal/observability"
	"github.com/spec-kit/investor-insight/internal/persistence"
	"github.com/spec-kit/investor-insight/internal/repository"
	"github.com/spec-kit/investor-insight/internal/service"
	"github.com/spec-kit/investor-insight/internal/startups"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.Auth.UsingDevSecret {
		logger.Warn("AUTH_JWT_SECRET not set; using development-only signing secret")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()

	userRepo := repository.NewUserRepository(pg.PoolHandle())

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo: userRepo,
		Logger:   logger,
	})
	adminService := service.NewAdminService(userRepo)

	provider := startups.New(cfg.Airtable, redis, logger)

	resolver := auth.NewSessionResolver(authService.Codec(), cfg.Auth.CookieName, logger)
	routeMiddleware := auth.NewRouteMiddleware(resolver, auth.DefaultRoutes(), metrics, logger)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:          handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, provider.Source(), pg, redis),
		Auth:            handlers.NewAuthHandler(authService, cfg.Auth),
		Admin:           handlers.NewAdminHandler(adminService),
		Startups:        handlers.NewStartupsHandler(provider),
		RouteMiddleware: routeMiddleware,
		Metrics:         metrics,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
