package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ripplefeed/api-go/controllers"
)

func SetupUserRoutes(protected *gin.RouterGroup, userController *controllers.UserController, interactionController *controllers.InteractionController) {
	users := protected.Group("/users")
	{
		users.POST("/:userId/block", userController.BlockUser)
		users.DELETE("/:userId/block", userController.UnblockUser)
		users.POST("/:userId/follow", userController.FollowUser)
		users.GET("/:userId/bookmarks", interactionController.GetBookmarks)
	}
}
