package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ripplefeed/api-go/services"
	"github.com/ripplefeed/api-go/utils"
)

type PostController struct {
	Posts *services.PostService
}

type RepostRequest struct {
	Content string `json:"content"`
}

func NewPostController(posts *services.PostService) *PostController {
	return &PostController{Posts: posts}
}

// CreatePost godoc
// @Summary Create a new post
// @Description Creates a post with text and/or media content
// @Tags posts
// @Accept json
// @Produce json
// @Param post body services.CreatePostInput true "Post creation request"
// @Success 201 {object} models.Post
// @Router /posts [post]
func (pc *PostController) CreatePost(c *gin.Context) {
	user := utils.GetUser(c)
	var req services.CreatePostInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := pc.Posts.CreatePost(user, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// UpdatePost godoc
// @Summary Update an existing post
// @Description Applies the non-empty fields of the request to the post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param post body services.UpdatePostInput true "Post update request"
// @Success 200 {object} models.Post
// @Router /posts/{id} [put]
func (pc *PostController) UpdatePost(c *gin.Context) {
	user := utils.GetUser(c)
	var req services.UpdatePostInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := pc.Posts.UpdatePost(user, pathID(c, "id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary Delete a post
// @Description Removes a post and its likes, comments and bookmarks
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /posts/{id} [delete]
func (pc *PostController) DeletePost(c *gin.Context) {
	user := utils.GetUser(c)

	if err := pc.Posts.DeletePost(user, pathID(c, "id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// GetPost godoc
// @Summary Get a single post
// @Description Returns a post with its author and original-post chain
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} models.Post
// @Router /posts/{id} [get]
func (pc *PostController) GetPost(c *gin.Context) {
	post, err := pc.Posts.GetPost(pathID(c, "id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Repost godoc
// @Summary Share an existing post
// @Description Creates a new post referencing the original
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param repost body RepostRequest true "Optional share text"
// @Success 201 {object} models.Post
// @Router /posts/{id}/repost [post]
func (pc *PostController) Repost(c *gin.Context) {
	user := utils.GetUser(c)
	var req RepostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	repost, err := pc.Posts.Repost(user, pathID(c, "id"), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, repost)
}
