package router

import (
	"log"

	"github.com/arifmahmud/pixpost/internal/handlers"
	"github.com/arifmahmud/pixpost/internal/repositories"
	"github.com/arifmahmud/pixpost/internal/services"
	"github.com/arifmahmud/pixpost/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo, cfg *config.Config) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.CORSWithConfig(eMiddleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
	}))
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, mgClient *mongo.Client, dbName string, uploader handlers.ImageUploader) {
	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	postRepo := repositories.NewMongoPostRepository(mgClient.Database(dbName))
	engagementService := services.NewEngagementService(postRepo)

	g := e.Group("")

	postHandler := handlers.NewPostHandler(postRepo, uploader)
	postHandler.RegisterPostRoutes(g)
	log.Println("Post routes configured.")

	engagementHandler := handlers.NewEngagementHandler(engagementService)
	engagementHandler.RegisterEngagementRoutes(g)
	log.Println("Engagement routes configured.")

	log.Println("All routes configured.")
}
