package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ripplefeed/api-go/services"
	"github.com/ripplefeed/api-go/utils"
)

type FeedController struct {
	Posts    *services.PostService
	Activity *services.ActivityService
}

func NewFeedController(posts *services.PostService, activity *services.ActivityService) *FeedController {
	return &FeedController{Posts: posts, Activity: activity}
}

// GetFeed godoc
// @Summary Get the viewer's feed
// @Description Returns visible posts newest first, excluding blocked and blocking users
// @Tags feed
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /feed [get]
func (fc *FeedController) GetFeed(c *gin.Context) {
	user := utils.GetUser(c)

	posts, err := fc.Posts.GetFeed(user.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetActivityFeed godoc
// @Summary Get the global activity feed
// @Description Returns audit entries newest first, paginated by limit/offset
// @Tags feed
// @Produce json
// @Param limit query integer false "Page size (default: 50)"
// @Param offset query integer false "Entries to skip (default: 0)"
// @Success 200 {object} map[string]interface{}
// @Router /activity/feed [get]
func (fc *FeedController) GetActivityFeed(c *gin.Context) {
	limit := queryInt(c, "limit", services.DefaultActivityPageSize)
	offset := queryInt(c, "offset", 0)

	activities, err := fc.Activity.Feed(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"activities": activities,
		"pagination": gin.H{
			"limit":  limit,
			"offset": offset,
		},
	})
}
