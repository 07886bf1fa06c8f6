package main

import (
	"context"
	"os"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"ChecklistAPI/internal/config"
	"ChecklistAPI/internal/db"
	"ChecklistAPI/internal/logging"
	"ChecklistAPI/internal/middleware"
	"ChecklistAPI/internal/repository"
	"ChecklistAPI/internal/services"
)

func main() {
	ctx := context.Background()
	log := logging.NewJSON(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		log.Error(ctx, "config", "err", err)
		os.Exit(1)
	}
	if cfg.IsDevSecret() {
		log.Warn(ctx, "JWT_SECRET not set, using development default")
	}

	// ======================
	// INFRA
	// ======================
	if err := db.RunMigrations(ctx, cfg.DatabaseDSN); err != nil {
		log.Error(ctx, "migrations failed", "err", err)
		os.Exit(1)
	}
	pool, err := db.Connect(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "db connect failed", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	// ======================
	// REPOSITORIES
	// ======================
	userRepo := repository.NewUserRepository(pool)
	sessionRepo := repository.NewSessionRepository(pool)
	checklistRepo := repository.NewChecklistRepository(pool)

	// ======================
	// SERVICES
	// ======================
	userSvc := services.NewUserService(userRepo, cfg.BcryptCost)
	tokenSvc := services.NewTokenService(userRepo, sessionRepo, cfg.JWTSecret)
	checklistSvc := services.NewChecklistService(checklistRepo)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	authGate := middleware.Authenticate(tokenSvc, log)

	registerUserRoutes(e, userSvc, tokenSvc, authGate)
	registerChecklistRoutes(e, checklistSvc, authGate)

	log.Info(ctx, "starting server", "port", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
