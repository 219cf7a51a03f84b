package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mohammad-ishtiaque/Agro-clima-api/config"
	"github.com/mohammad-ishtiaque/Agro-clima-api/db"
	assessmenthandler "github.com/mohammad-ishtiaque/Agro-clima-api/internal/assessment/handler"
	assessmentpg "github.com/mohammad-ishtiaque/Agro-clima-api/internal/assessment/repository/postgres"
	assessmentservice "github.com/mohammad-ishtiaque/Agro-clima-api/internal/assessment/service"
	"github.com/mohammad-ishtiaque/Agro-clima-api/internal/auth/handler"
	"github.com/mohammad-ishtiaque/Agro-clima-api/internal/auth/repository/postgres"
	"github.com/mohammad-ishtiaque/Agro-clima-api/internal/auth/service"
	"github.com/mohammad-ishtiaque/Agro-clima-api/internal/mailer"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg := config.Load()
	setLogLevel(cfg.LogLevel)

	ctx := context.Background()

	if err := db.RunMigrations(ctx, cfg.DBURL); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	dispatcher := mailer.NewDispatcher(mailer.New(cfg), 64)
	dispatcher.Start()
	defer dispatcher.Stop()

	userRepo := postgres.NewPostgresRepository(pool)
	tokenService := service.NewTokenService(cfg.SecretKey, cfg.AccessExpiryMin)
	userService := service.NewUserService(userRepo, tokenService, dispatcher)
	authHandler := handler.NewAuthHandler(userService)

	assessmentRepo := assessmentpg.NewPostgresRepository(pool)
	assessmentService := assessmentservice.NewAssessmentService(assessmentRepo)
	assessmentHandler := assessmenthandler.NewAssessmentHandler(assessmentService)

	app := fiber.New(fiber.Config{
		AppName:      "agro-clima-api",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/db-check", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "error", "detail": "database unreachable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	handler.RegisterRoutes(app, authHandler)
	assessmenthandler.RegisterRoutes(app, assessmentHandler, authHandler.RequireAuth, authHandler.RequireVerified)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}

func setLogLevel(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}
