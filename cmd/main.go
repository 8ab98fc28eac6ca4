package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mentorhub/internal/auth/config"
	authmodel "mentorhub/internal/auth/domain/model"
	"mentorhub/internal/di"
	"mentorhub/internal/shared/eventbus"
	"mentorhub/internal/shared/logger"
	"mentorhub/internal/shared/store"

	"github.com/caarlos0/env/v6"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

// ServerConfig holds server configuration
type ServerConfig struct {
	Host      string `env:"SERVER_HOST" envDefault:"localhost"`
	Port      string `env:"SERVER_PORT" envDefault:"3000"`
	StorePath string `env:"STORE_PATH" envDefault:"mentorhub.db"`
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	serverCfg := &ServerConfig{}
	if err := env.Parse(serverCfg); err != nil {
		log.Fatalf("Failed to load server configuration: %v", err)
	}

	appLogger := logger.NewLogger()
	appLogger.Info("Application configuration loaded successfully")

	container := di.NewContainer()
	defer func() {
		if err := container.Close(); err != nil {
			appLogger.Errorf("Failed to close container: %v", err)
		}
	}()

	// Open the durable store. Records written before a restart must be
	// readable after, so everything lives in a single file on disk.
	db, err := store.OpenBolt(serverCfg.StorePath)
	if err != nil {
		log.Fatalf("Failed to open store at %s: %v", serverCfg.StorePath, err)
	}
	appLogger.Infof("Durable store opened at %s", serverCfg.StorePath)

	authConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load auth configuration: %v", err)
	}

	if err := container.InitializeAuth(db, authConfig); err != nil {
		log.Fatalf("Failed to initialize auth module: %v", err)
	}
	appLogger.Info("Auth module initialized successfully")

	eventbus.RegisterAuditSubscriber(container.Events, appLogger)
	appLogger.Info("Audit subscriber registered")

	if err := container.InitializeBooking(); err != nil {
		log.Fatalf("Failed to initialize booking module: %v", err)
	}
	appLogger.Info("Booking module initialized successfully")

	app := fiber.New(fiber.Config{
		AppName:      "MentorHub Registry v1.0",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			appLogger.Errorf("HTTP Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal Server Error",
			})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		healthCtx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		if err := container.HealthCheck(healthCtx); err != nil {
			appLogger.Errorf("Health check failed: %v", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "UNHEALTHY",
				"error":  err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"status":    "HEALTHY",
			"timestamp": time.Now().UTC(),
			"modules": fiber.Map{
				"auth":    "initialized",
				"booking": "initialized",
			},
		})
	})

	// Register module routes. Booking routes sit behind the auth middleware
	// so every ledger operation has an authenticated caller.
	api := app.Group("/api/v1")

	authModule := container.GetAuthModule()
	app.Use(authModule.GetMiddleware().RequestID())
	authModule.RegisterRoutes(api)
	appLogger.Info("Auth routes registered")

	bookingModule := container.GetBookingModule()
	middleware := authModule.GetMiddleware()
	protected := api.Group("/", middleware.Protect())
	bookingModule.RegisterRoutes(protected, middleware.RequireRole(string(authmodel.RoleMentor)))
	appLogger.Info("Booking routes registered")

	serverAddr := fmt.Sprintf("%s:%s", serverCfg.Host, serverCfg.Port)
	appLogger.Infof("All modules initialized. Starting HTTP server on %s", serverAddr)

	serverShutdown := make(chan error, 1)
	go func() {
		serverShutdown <- app.Listen(serverAddr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverShutdown:
		if err != nil {
			appLogger.Errorf("Server failed to start: %v", err)
			log.Fatalf("Server startup failed: %v", err)
		}
	case sig := <-quit:
		appLogger.Infof("Received shutdown signal: %v", sig)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			appLogger.Errorf("Server forced to shutdown: %v", err)
		}

		appLogger.Info("HTTP server stopped")
	}
}
