package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/oseasjs/nest-crud-jwt/internal/config"
	"github.com/oseasjs/nest-crud-jwt/internal/http/handlers"
	applog "github.com/oseasjs/nest-crud-jwt/internal/log"
	"github.com/oseasjs/nest-crud-jwt/internal/repos"
	"github.com/oseasjs/nest-crud-jwt/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Auth wiring
	userRepo := repos.NewUserRepo(db)
	tokenSvc := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := services.NewAuthService(userRepo, tokenSvc)

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.global.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	}))

	// ---------- Routes ----------
	deps := handlers.NewDeps(db, authSvc)

	app.Post("/auth/signup", deps.AuthHandler.SignUp)
	app.Post("/auth/signin", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.signin.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many attempts, try again later"})
		},
	}), deps.AuthHandler.SignIn)

	products := app.Group("/products", handlers.RequireUser(authSvc))
	products.Get("/", deps.ProductHandler.List)
	products.Post("/", deps.ProductHandler.Create)
	products.Get("/:id", deps.ProductHandler.Get)
	products.Delete("/:id", deps.ProductHandler.Delete)
	products.Patch("/:id", deps.ProductHandler.UpdateStatus)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	})

	log.Fatal(app.Listen(cfg.Addr))
}
