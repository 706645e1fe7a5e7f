package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ripplefeed/api-go/controllers"
)

func SetupNotificationRoutes(protected *gin.RouterGroup, notificationController *controllers.NotificationController) {
	notifications := protected.Group("/notifications")
	{
		notifications.GET("/stream", notificationController.Stream)
	}
}
