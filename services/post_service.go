package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/ripplefeed/api-go/models"
	"github.com/ripplefeed/api-go/utils"
)

// PostService is the write orchestrator for posts and the read-side feed
// assembler. Every mutation follows the same contract: the primary write
// commits on its own, then the activity append and notification publish run
// as independent best-effort steps that are logged, never rolled back into
// the primary result.
type PostService struct {
	db            *gorm.DB
	graph         *GraphService
	activity      *ActivityService
	notifications *NotificationService
	likeCache     *LikeCache
	logger        *slog.Logger
}

func NewPostService(db *gorm.DB, graph *GraphService, activity *ActivityService, notifications *NotificationService, likeCache *LikeCache, logger *slog.Logger) *PostService {
	return &PostService{
		db:            db,
		graph:         graph,
		activity:      activity,
		notifications: notifications,
		likeCache:     likeCache,
		logger:        logger,
	}
}

type CreatePostInput struct {
	Content string `json:"content"`
	Image   string `json:"image"`
	Video   string `json:"video"`
}

type UpdatePostInput struct {
	Content string `json:"content"`
	Image   string `json:"image"`
	Video   string `json:"video"`
}

func (in *CreatePostInput) empty() bool {
	return in.Content == "" && in.Image == "" && in.Video == ""
}

func (in *UpdatePostInput) empty() bool {
	return in.Content == "" && in.Image == "" && in.Video == ""
}

// CreatePost persists a new post and appends a POST activity entry. The
// author gets no notification for their own action.
func (s *PostService) CreatePost(actor *utils.UserClaims, input CreatePostInput) (*models.Post, error) {
	if input.empty() {
		return nil, utils.Validation("please provide one of content, image or video")
	}

	author, err := s.user(actor.UserID)
	if err != nil {
		return nil, err
	}

	post := models.Post{
		Content:  input.Content,
		Image:    input.Image,
		Video:    input.Video,
		Hashtags: extractHashtags(input.Content),
		UserID:   author.ID,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, utils.Unavailable(err)
	}

	s.recordActivity(author.ID, models.ActionPost,
		fmt.Sprintf("%s created a new post", author.Username), &post.ID)

	post.User = *author
	return &post, nil
}

// UpdatePost applies the non-empty fields only; absent fields keep their
// stored value. Author-only, no role override.
func (s *PostService) UpdatePost(actor *utils.UserClaims, postID uint, input UpdatePostInput) (*models.Post, error) {
	if input.empty() {
		return nil, utils.Validation("please provide one of content, image or video")
	}

	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound("post not found")
		}
		return nil, utils.Unavailable(err)
	}
	if post.UserID != actor.UserID {
		return nil, utils.Forbidden("you can only update your own posts")
	}

	updates := make(map[string]interface{})
	if input.Content != "" {
		updates["content"] = input.Content
		updates["hashtags"] = pq.StringArray(extractHashtags(input.Content))
	}
	if input.Image != "" {
		updates["image"] = input.Image
	}
	if input.Video != "" {
		updates["video"] = input.Video
	}

	if err := s.db.Model(&post).Updates(updates).Error; err != nil {
		return nil, utils.Unavailable(err)
	}

	if err := s.db.Preload("User").First(&post, postID).Error; err != nil {
		return nil, utils.Unavailable(err)
	}
	return &post, nil
}

// DeletePost removes a post and its dependent rows. Allowed for the author
// and for privileged roles. Deletion is not logged to the activity trail.
func (s *PostService) DeletePost(actor *utils.UserClaims, postID uint) error {
	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound("post not found")
		}
		return utils.Unavailable(err)
	}

	if post.UserID != actor.UserID && !actor.IsPrivileged() {
		return utils.Forbidden("you do not have permission to delete this post")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Bookmark{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		// Reposts of the deleted post survive with a dangling-free nil
		// original pointer.
		if err := tx.Model(&models.Post{}).
			Where("original_post_id = ?", postID).
			Update("original_post_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		return utils.Unavailable(err)
	}

	s.likeCache.Invalidate(context.Background(), postID)
	return nil
}

// GetPost resolves one post with its author and original-post chain. It
// deliberately skips the block filter; see DESIGN.md.
func (s *PostService) GetPost(postID uint) (*models.Post, error) {
	var post models.Post
	err := s.db.Preload("User").
		Preload("Original").
		Preload("Original.User").
		First(&post, postID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound("post not found")
		}
		return nil, utils.Unavailable(err)
	}
	return &post, nil
}

// GetFeed returns posts visible to the viewer, newest first. Authors in the
// symmetric block union are excluded in both directions.
func (s *PostService) GetFeed(viewerID uint) ([]models.Post, error) {
	excluded, err := s.graph.ExcludedUserIDs(viewerID)
	if err != nil {
		return nil, err
	}

	query := s.db.Preload("User").
		Preload("Original").
		Preload("Original.User").
		Order("created_at DESC, id DESC")
	if len(excluded) > 0 {
		query = query.Where("user_id NOT IN ?", excluded)
	}

	var posts []models.Post
	if err := query.Find(&posts).Error; err != nil {
		return nil, utils.Unavailable(err)
	}
	return posts, nil
}

// Repost creates a new post pointing at the original, notifies the original
// author and appends a POST activity entry. The chain is acyclic by
// construction: the original must already exist.
func (s *PostService) Repost(actor *utils.UserClaims, postID uint, content string) (*models.Post, error) {
	author, err := s.user(actor.UserID)
	if err != nil {
		return nil, err
	}

	var original models.Post
	if err := s.db.Preload("User").First(&original, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound("post not found")
		}
		return nil, utils.Unavailable(err)
	}

	repost := models.Post{
		Content:        content,
		Hashtags:       extractHashtags(content),
		UserID:         author.ID,
		OriginalPostID: &original.ID,
	}
	if err := s.db.Create(&repost).Error; err != nil {
		return nil, utils.Unavailable(err)
	}

	s.notifications.Notify(original.UserID, fmt.Sprintf("%s shared your post", author.Username))
	s.recordActivity(author.ID, models.ActionPost,
		fmt.Sprintf("%s shared a post", author.Username), &repost.ID)

	repost.User = *author
	repost.Original = &original
	return &repost, nil
}

func (s *PostService) user(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFound("user not found")
		}
		return nil, utils.Unavailable(err)
	}
	return &user, nil
}

// recordActivity appends to the audit trail after the primary write has
// committed. Failures are logged and swallowed: the primary effect already
// succeeded and is reported as success.
func (s *PostService) recordActivity(actorID uint, action models.ActionType, message string, targetID *uint) {
	if err := s.activity.Record(actorID, action, message, targetID); err != nil {
		s.logger.Warn("activity append failed",
			"actor_id", actorID,
			"action", string(action),
			"error", err)
	}
}

// extractHashtags pulls #tags out of post content.
func extractHashtags(content string) []string {
	words := strings.Fields(content)
	var hashtags []string
	for _, word := range words {
		if strings.HasPrefix(word, "#") {
			hashtag := strings.TrimPrefix(word, "#")
			if hashtag != "" {
				hashtags = append(hashtags, hashtag)
			}
		}
	}
	return hashtags
}
