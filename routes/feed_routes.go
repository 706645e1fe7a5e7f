package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ripplefeed/api-go/controllers"
)

func SetupFeedRoutes(protected *gin.RouterGroup, feedController *controllers.FeedController) {
	feed := protected.Group("/feed")
	{
		feed.GET("", feedController.GetFeed)
	}

	activity := protected.Group("/activity")
	{
		activity.GET("/feed", feedController.GetActivityFeed)
	}
}
