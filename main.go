package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ripplefeed/api-go/config"
	"github.com/ripplefeed/api-go/middleware"
	"github.com/ripplefeed/api-go/routes"
	"github.com/ripplefeed/api-go/services"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using environment")
	}

	// Initialize database
	db := config.InitDB()

	// Optional like-count cache
	redisClient := config.ConnectRedis(logger)

	// The dispatcher is the single shared delivery registry, constructed
	// here and handed to whoever publishes or subscribes.
	dispatcher := services.NewDispatcher(services.DefaultMaxRecipients)

	// Create a new Gin router
	r := gin.Default()
	r.Use(middleware.RequestID())

	// Initialize routes
	routes.SetupRoutes(r, db, redisClient, dispatcher, logger)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("starting server", "port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
