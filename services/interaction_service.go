package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/ripplefeed/api-go/models"
	"github.com/ripplefeed/api-go/utils"
)

// InteractionService covers likes, bookmarks and comments. The toggle
// relations rely on the storage uniqueness constraints to settle concurrent
// races: the loser's duplicate insert is read as "already in that state".
type InteractionService struct {
	db            *gorm.DB
	activity      *ActivityService
	notifications *NotificationService
	likeCache     *LikeCache
	logger        *slog.Logger
}

func NewInteractionService(db *gorm.DB, activity *ActivityService, notifications *NotificationService, likeCache *LikeCache, logger *slog.Logger) *InteractionService {
	return &InteractionService{
		db:            db,
		activity:      activity,
		notifications: notifications,
		likeCache:     likeCache,
		logger:        logger,
	}
}

// ToggleLike likes the post if no like exists, otherwise removes it. The
// post's author is notified either way, with different wording; only the
// like-add is logged to the activity trail.
func (s *InteractionService) ToggleLike(actor *utils.UserClaims, postID uint) (bool, error) {
	actorUser, post, err := s.actorAndPost(actor.UserID, postID)
	if err != nil {
		return false, err
	}

	var existing models.Like
	err = s.db.Where("post_id = ? AND user_id = ?", postID, actor.UserID).First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		like := models.Like{UserID: actor.UserID, PostID: postID}
		if err := s.db.Create(&like).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Concurrent toggle already inserted the row.
				return true, nil
			}
			return false, utils.Unavailable(err)
		}

		s.likeCache.Incr(context.Background(), postID)
		s.notifications.Notify(post.UserID,
			fmt.Sprintf("%s recently liked your post", actorUser.Username))
		s.recordActivity(actor.UserID, models.ActionLike,
			fmt.Sprintf("%s liked a post", actorUser.Username), &post.ID)
		return true, nil
	}
	if err != nil {
		return false, utils.Unavailable(err)
	}

	if err := s.db.Delete(&existing).Error; err != nil {
		return false, utils.Unavailable(err)
	}
	s.likeCache.Decr(context.Background(), postID)
	s.notifications.Notify(post.UserID,
		fmt.Sprintf("%s recently unliked your post", actorUser.Username))
	return false, nil
}

// GetLikes lists a post's likes with each liker's public profile.
func (s *InteractionService) GetLikes(postID uint) ([]models.Like, error) {
	if err := s.postExists(postID); err != nil {
		return nil, err
	}
	var likes []models.Like
	if err := s.db.Preload("User").Where("post_id = ?", postID).Find(&likes).Error; err != nil {
		return nil, utils.Unavailable(err)
	}
	return likes, nil
}

// LikeCount reads the cached count, falling back to the database and
// backfilling the cache on a miss.
func (s *InteractionService) LikeCount(ctx context.Context, postID uint) (int64, error) {
	if count, ok := s.likeCache.Get(ctx, postID); ok {
		return count, nil
	}
	var count int64
	if err := s.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, utils.Unavailable(err)
	}
	s.likeCache.Set(ctx, postID, count)
	return count, nil
}

// AddComment appends a comment. Treated as a minor action: no notification,
// no activity entry.
func (s *InteractionService) AddComment(actor *utils.UserClaims, postID uint, content string) (*models.Comment, error) {
	if content == "" {
		return nil, utils.Validation("comment content is required")
	}

	actorUser, _, err := s.actorAndPost(actor.UserID, postID)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		Content: content,
		UserID:  actor.UserID,
		PostID:  postID,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, utils.Unavailable(err)
	}

	comment.User = *actorUser
	return &comment, nil
}

// GetComments lists a post's comments with commenter profiles, oldest first.
func (s *InteractionService) GetComments(postID uint) ([]models.Comment, error) {
	if err := s.postExists(postID); err != nil {
		return nil, err
	}
	var comments []models.Comment
	err := s.db.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, utils.Unavailable(err)
	}
	return comments, nil
}

// ToggleBookmark is the private sibling of ToggleLike: no notification, no
// activity entry, just list membership.
func (s *InteractionService) ToggleBookmark(actor *utils.UserClaims, postID uint) (bool, error) {
	if err := s.postExists(postID); err != nil {
		return false, err
	}

	var existing models.Bookmark
	err := s.db.Where("post_id = ? AND user_id = ?", postID, actor.UserID).First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		bookmark := models.Bookmark{UserID: actor.UserID, PostID: postID}
		if err := s.db.Create(&bookmark).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return true, nil
			}
			return false, utils.Unavailable(err)
		}
		return true, nil
	}
	if err != nil {
		return false, utils.Unavailable(err)
	}

	if err := s.db.Delete(&existing).Error; err != nil {
		return false, utils.Unavailable(err)
	}
	return false, nil
}

// GetBookmarks lists a user's bookmarks with the bookmarked post embedded.
func (s *InteractionService) GetBookmarks(userID uint) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	err := s.db.Preload("Post").
		Preload("Post.User").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&bookmarks).Error
	if err != nil {
		return nil, utils.Unavailable(err)
	}
	return bookmarks, nil
}

func (s *InteractionService) postExists(postID uint) error {
	var post models.Post
	if err := s.db.Select("id").First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound("post not found")
		}
		return utils.Unavailable(err)
	}
	return nil
}

func (s *InteractionService) actorAndPost(actorID, postID uint) (*models.User, *models.Post, error) {
	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, utils.NotFound("post not found")
		}
		return nil, nil, utils.Unavailable(err)
	}
	var actorUser models.User
	if err := s.db.First(&actorUser, actorID).Error; err != nil {
		return nil, nil, utils.Unavailable(err)
	}
	return &actorUser, &post, nil
}

func (s *InteractionService) recordActivity(actorID uint, action models.ActionType, message string, targetID *uint) {
	if err := s.activity.Record(actorID, action, message, targetID); err != nil {
		s.logger.Warn("activity append failed",
			"actor_id", actorID,
			"action", string(action),
			"error", err)
	}
}
