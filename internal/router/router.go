package router

import (
	"log"

	"github.com/creddit/backend/internal/handlers"
	"github.com/creddit/backend/internal/middleware"
	"github.com/creddit/backend/internal/models"
	"github.com/creddit/backend/internal/repositories"
	"github.com/creddit/backend/internal/services"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies.
// queue is the producer side of the task broker; the worker binary consumes
// from the other end.
func SetupRoutes(e *echo.Echo, db *gorm.DB, queue services.TaskQueue, jwtSecret string) {
	// AutoMigrate models
	err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Follow{},
		&models.UserFeed{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("Auto-migrations completed for all models.")

	// Health check - always accessible
	healthHandler := handlers.NewHealthHandler(db)
	e.GET("/health", healthHandler.HealthCheck)

	// --- Initialize repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	feedRepo := repositories.NewPostgresFeedRepository(db)

	// --- Initialize services ---
	followService := services.NewFollowService(followRepo, userRepo)
	feedService := services.NewFeedService(feedRepo, followRepo)
	dispatcher := services.NewFanoutDispatcher(followRepo, queue)
	postService := services.NewPostService(postRepo, dispatcher)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, jwtSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuth(jwtSecret))

	// User profile routes
	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterProfileRoutes(api)
	log.Println("User profile routes configured.")

	// Post routes
	postHandler := handlers.NewPostHandler(postService)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	// Follow routes
	followHandler := handlers.NewFollowHandler(followService)
	followHandler.RegisterFollowRoutes(api)
	log.Println("Follow routes configured.")

	// Feed routes
	feedHandler := handlers.NewFeedHandler(feedService)
	feedHandler.RegisterFeedRoutes(api)
	log.Println("Feed routes configured.")

	log.Println("All routes configured.")
}
