package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ripplefeed/api-go/services"
	"github.com/ripplefeed/api-go/utils"
)

type UserController struct {
	Graph *services.GraphService
}

func NewUserController(graph *services.GraphService) *UserController {
	return &UserController{Graph: graph}
}

// BlockUser godoc
// @Summary Block a user
// @Description Inserts a directional block; visibility filtering is symmetric
// @Tags users
// @Produce json
// @Param userId path string true "User ID to block"
// @Success 200 {object} map[string]interface{}
// @Router /users/{userId}/block [post]
func (uc *UserController) BlockUser(c *gin.Context) {
	user := utils.GetUser(c)

	if err := uc.Graph.Block(user.UserID, pathID(c, "userId")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"blocked": true, "message": "Successfully blocked user"})
}

// UnblockUser godoc
// @Summary Unblock a user
// @Description Removes the actor's block on the target
// @Tags users
// @Produce json
// @Param userId path string true "User ID to unblock"
// @Success 200 {object} map[string]interface{}
// @Router /users/{userId}/block [delete]
func (uc *UserController) UnblockUser(c *gin.Context) {
	user := utils.GetUser(c)

	if err := uc.Graph.Unblock(user.UserID, pathID(c, "userId")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"blocked": false, "message": "Successfully unblocked user"})
}

// FollowUser godoc
// @Summary Follow or unfollow a user
// @Description Toggles follow status for a user
// @Tags users
// @Produce json
// @Param userId path string true "User ID to follow"
// @Success 200 {object} map[string]interface{}
// @Router /users/{userId}/follow [post]
func (uc *UserController) FollowUser(c *gin.Context) {
	user := utils.GetUser(c)

	following, err := uc.Graph.ToggleFollow(user.UserID, pathID(c, "userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	if following {
		c.JSON(http.StatusOK, gin.H{"following": true, "message": "Successfully followed user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": false, "message": "Successfully unfollowed user"})
}
