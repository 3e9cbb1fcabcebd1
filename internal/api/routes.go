package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/servicepost/content-engine/internal/api/handlers"
	"github.com/servicepost/content-engine/internal/api/middleware"
	ws "github.com/servicepost/content-engine/internal/api/websocket"
	"github.com/servicepost/content-engine/internal/config"
	"github.com/servicepost/content-engine/internal/database"
	"github.com/servicepost/content-engine/internal/repository"
	"github.com/servicepost/content-engine/internal/service/generation"
)

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, db *database.DatabaseClient, generator *generation.Generator, wsHub *ws.Hub, cfg *config.Config) {
	repoFactory := repository.NewRepositoryFactory(db.DB)

	businessHandler := handlers.NewBusinessHandler(repoFactory)
	postHandler := handlers.NewPostHandler(repoFactory)
	generationHandler := handlers.NewGenerationHandler(generator, repoFactory, wsHub, cfg)

	api := app.Group("/api")

	// Health check route
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	// Business routes
	businesses := api.Group("/businesses", middleware.JWTMiddleware(cfg))
	businesses.Post("/", businessHandler.CreateBusiness)
	businesses.Get("/", businessHandler.ListBusinesses)
	businesses.Get("/:id", businessHandler.GetBusiness)

	// Post routes
	posts := api.Group("/posts", middleware.JWTMiddleware(cfg))
	posts.Get("/", postHandler.ListPosts)
	posts.Post("/generate", generationHandler.GeneratePost)
	posts.Post("/describe-image", generationHandler.DescribeImage)
	posts.Get("/:id", postHandler.GetPost)
	posts.Delete("/:id", middleware.AdminOnly(), postHandler.DeletePost)
	posts.Get("/:id/html", postHandler.GetPostHTML)
	posts.Get("/:id/compliance", postHandler.GetCompliance)
	posts.Get("/:id/runs", postHandler.GetRuns)
	posts.Get("/:id/generation-status", generationHandler.GetGenerationStatus)
	posts.Post("/:id/publish", postHandler.PublishPost)
	posts.Post("/:id/sections/regenerate", generationHandler.RegenerateSection)

	// WebSocket endpoint for real-time generation updates
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})

	app.Get("/ws/posts/:id", middleware.JWTMiddleware(cfg), websocket.New(func(conn *websocket.Conn) {
		postID, err := uuid.Parse(conn.Params("id"))
		if err != nil {
			conn.Close()
			return
		}
		wsHub.HandleConnection(conn, postID)
	}))
}
