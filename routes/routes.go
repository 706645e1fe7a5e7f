package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ripplefeed/api-go/controllers"
	"github.com/ripplefeed/api-go/middleware"
	"github.com/ripplefeed/api-go/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, redisClient *redis.Client, dispatcher *services.Dispatcher, logger *slog.Logger) {
	// Core services
	likeCache := services.NewLikeCache(redisClient)
	activityService := services.NewActivityService(db)
	notificationService := services.NewNotificationService(db, dispatcher, logger)
	graphService := services.NewGraphService(db, activityService, notificationService, logger)
	postService := services.NewPostService(db, graphService, activityService, notificationService, likeCache, logger)
	interactionService := services.NewInteractionService(db, activityService, notificationService, likeCache, logger)

	// Controllers
	postController := controllers.NewPostController(postService)
	feedController := controllers.NewFeedController(postService, activityService)
	interactionController := controllers.NewInteractionController(interactionService)
	userController := controllers.NewUserController(graphService)
	notificationController := controllers.NewNotificationController(notificationService)
	uploadController := controllers.NewUploadController()

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		SetupPostRoutes(protected, postController)
		SetupFeedRoutes(protected, feedController)
		SetupInteractionRoutes(protected, interactionController)
		SetupUserRoutes(protected, userController, interactionController)
		SetupNotificationRoutes(protected, notificationController)
		SetupUploadRoutes(protected, uploadController)
	}
}
