package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ripplefeed/api-go/services"
	"github.com/ripplefeed/api-go/utils"
)

type InteractionController struct {
	Interactions *services.InteractionService
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func NewInteractionController(interactions *services.InteractionService) *InteractionController {
	return &InteractionController{Interactions: interactions}
}

// LikePost godoc
// @Summary Like or unlike a post
// @Description Toggles like status for a post
// @Tags interactions
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /posts/{id}/like [post]
func (ic *InteractionController) LikePost(c *gin.Context) {
	user := utils.GetUser(c)

	liked, err := ic.Interactions.ToggleLike(user, pathID(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

// GetLikes godoc
// @Summary Get a post's likes
// @Description Returns likes with each liker's public profile and the total count
// @Tags interactions
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /posts/{id}/likes [get]
func (ic *InteractionController) GetLikes(c *gin.Context) {
	postID := pathID(c, "id")

	likes, err := ic.Interactions.GetLikes(postID)
	if err != nil {
		respondError(c, err)
		return
	}

	count, err := ic.Interactions.LikeCount(c.Request.Context(), postID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"likes": likes, "count": count})
}

// AddComment godoc
// @Summary Comment on a post
// @Description Appends a comment and returns it with the commenter's profile
// @Tags interactions
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param comment body AddCommentRequest true "Comment content"
// @Success 201 {object} models.Comment
// @Router /posts/{id}/comments [post]
func (ic *InteractionController) AddComment(c *gin.Context) {
	user := utils.GetUser(c)
	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := ic.Interactions.AddComment(user, pathID(c, "id"), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// GetComments godoc
// @Summary Get a post's comments
// @Description Returns comments oldest first with commenter profiles
// @Tags interactions
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /posts/{id}/comments [get]
func (ic *InteractionController) GetComments(c *gin.Context) {
	comments, err := ic.Interactions.GetComments(pathID(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// BookmarkPost godoc
// @Summary Bookmark or unbookmark a post
// @Description Toggles bookmark status for a post
// @Tags interactions
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /posts/{id}/bookmark [post]
func (ic *InteractionController) BookmarkPost(c *gin.Context) {
	user := utils.GetUser(c)

	bookmarked, err := ic.Interactions.ToggleBookmark(user, pathID(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookmarked": bookmarked})
}

// GetBookmarks godoc
// @Summary Get a user's bookmarks
// @Description Returns bookmarks with the bookmarked post embedded
// @Tags interactions
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Router /users/{userId}/bookmarks [get]
func (ic *InteractionController) GetBookmarks(c *gin.Context) {
	bookmarks, err := ic.Interactions.GetBookmarks(pathID(c, "userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookmarks": bookmarks})
}
