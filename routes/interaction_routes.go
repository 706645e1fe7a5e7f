package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ripplefeed/api-go/controllers"
)

func SetupInteractionRoutes(protected *gin.RouterGroup, interactionController *controllers.InteractionController) {
	posts := protected.Group("/posts")
	{
		posts.POST("/:id/like", interactionController.LikePost)
		posts.GET("/:id/likes", interactionController.GetLikes)
		posts.POST("/:id/comments", interactionController.AddComment)
		posts.GET("/:id/comments", interactionController.GetComments)
		posts.POST("/:id/bookmark", interactionController.BookmarkPost)
	}
}
