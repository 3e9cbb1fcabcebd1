package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"github.com/servicepost/content-engine/internal/api"
	ws "github.com/servicepost/content-engine/internal/api/websocket"
	"github.com/servicepost/content-engine/internal/config"
	"github.com/servicepost/content-engine/internal/database"
	"github.com/servicepost/content-engine/internal/service/generation"
	"github.com/servicepost/content-engine/internal/service/generation/providers"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Initialize configuration
	cfg := config.NewConfig()

	// Connect to PostgreSQL
	db, err := database.InitPostgreSQL(cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()

	// Connect to Redis
	redisClient, err := database.InitRedis(cfg.RedisURI)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Providers in fallback priority order. Adapters without a configured
	// key stay registered but report unavailable and are skipped.
	gemini, err := providers.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}
	generator := generation.NewGenerator(generation.Options{
		Providers: []providers.Provider{
			gemini,
			providers.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel),
			providers.NewAnthropic(cfg.AnthropicAPIKey, cfg.AnthropicModel),
		},
		RateLimit: rate.Limit(cfg.RateLimitPerSec),
		RateBurst: cfg.RateBurst,
		Cache:     redisClient,
		CacheTTL:  cfg.CacheTTL,
	})
	defer generator.Close()

	// WebSocket hub for generation progress updates
	wsHub := ws.NewHub()
	go wsHub.Run()

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, PATCH",
	}))

	// Setup routes
	api.SetupRoutes(app, db, generator, wsHub, cfg)

	// Start server
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
}
