// Package app assembles the catalog HTTP application.
package app

import (
	"fmt"
	"time"

	"katalog/internal/config"
	"katalog/internal/handlers"
	"katalog/internal/media"
	"katalog/internal/middleware"
	"katalog/internal/repositories"
	"katalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProductImageDir is where product images live below the media root.
const ProductImageDir = "uploads/product"

// New wires repositories, services and handlers into a Fiber app.
// events may be nil, in which case no catalog events are published.
func New(cfg *config.Config, db *gorm.DB, log *zap.Logger, events services.EventPublisher) (*fiber.App, error) {
	storage, err := media.NewStorage(cfg.MediaRoot, ProductImageDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize media storage: %w", err)
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	tagRepo := repositories.NewGORMTagRepository(db)
	attributeRepo := repositories.NewGORMAttributeRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)

	// --- Services ---
	userService := services.NewUserService(userRepo, log)
	authService := services.NewAuthService(userService, cfg.JWTSecret, cfg.TokenTTL)
	tagService := services.NewTagService(tagRepo, events, log)
	attributeService := services.NewAttributeService(attributeRepo, events, log)
	productService := services.NewProductService(productRepo, tagRepo, attributeRepo, storage, events, log)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(userService, authService)
	tagHandler := handlers.NewTagHandler(tagService)
	attributeHandler := handlers.NewAttributeHandler(attributeService)
	productHandler := handlers.NewProductHandler(productService, cfg.MaxUploadBytes)

	app := fiber.New(fiber.Config{
		AppName:      "katalog",
		BodyLimit:    cfg.MaxUploadBytes + 1<<20, // room for multipart framing
		ErrorHandler: handlers.ErrorHandler(log),
	})

	app.Use(recover.New())
	app.Use(logger.New())

	app.Static("/media", storage.Root())

	app.Get("/health", func(c *fiber.Ctx) error {
		status, code := "healthy", fiber.StatusOK
		if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
			status, code = "unhealthy", fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{
			"status": status,
			"time":   time.Now().Format(time.RFC3339),
			"events": events != nil,
		})
	})

	apiV1 := app.Group("/api/v1")

	// Auth wraps each resource group; unmatched /api/v1 paths fall through to 404.
	requireAuth := middleware.AuthRequired(authService)
	authHandler.RegisterRoutes(apiV1, requireAuth)
	tagHandler.RegisterRoutes(apiV1, requireAuth)
	attributeHandler.RegisterRoutes(apiV1, requireAuth)
	productHandler.RegisterRoutes(apiV1, requireAuth)

	return app, nil
}
