package services

import (
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/ripplefeed/api-go/models"
	"github.com/ripplefeed/api-go/utils"
)

// GraphService holds the follow and block relations. Blocks gate feed
// visibility; follows are informational.
type GraphService struct {
	db            *gorm.DB
	activity      *ActivityService
	notifications *NotificationService
	logger        *slog.Logger
}

func NewGraphService(db *gorm.DB, activity *ActivityService, notifications *NotificationService, logger *slog.Logger) *GraphService {
	return &GraphService{db: db, activity: activity, notifications: notifications, logger: logger}
}

// Block inserts the directional block row. Blocking an already-blocked user
// is a conflict, not an idempotent no-op.
func (s *GraphService) Block(actorID, targetID uint) error {
	if actorID == targetID {
		return utils.Validation("cannot block yourself")
	}

	var target models.User
	if err := s.db.First(&target, targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound("user not found")
		}
		return utils.Unavailable(err)
	}

	block := models.Block{BlockerUserID: actorID, BlockedUserID: targetID}
	if err := s.db.Create(&block).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Conflict("user is already blocked")
		}
		return utils.Unavailable(err)
	}
	return nil
}

// Unblock removes the actor's block on the target.
func (s *GraphService) Unblock(actorID, targetID uint) error {
	result := s.db.Where("blocker_user_id = ? AND blocked_user_id = ?", actorID, targetID).
		Delete(&models.Block{})
	if result.Error != nil {
		return utils.Unavailable(result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.NotFound("block not found")
	}
	return nil
}

// ExcludedUserIDs computes the symmetric block union for a viewer: users
// the viewer blocked plus users who blocked the viewer. Feed queries drop
// posts authored by anyone in this set.
func (s *GraphService) ExcludedUserIDs(viewerID uint) ([]uint, error) {
	var blocked []uint
	if err := s.db.Model(&models.Block{}).
		Where("blocker_user_id = ?", viewerID).
		Pluck("blocked_user_id", &blocked).Error; err != nil {
		return nil, utils.Unavailable(err)
	}

	var blockedBy []uint
	if err := s.db.Model(&models.Block{}).
		Where("blocked_user_id = ?", viewerID).
		Pluck("blocker_user_id", &blockedBy).Error; err != nil {
		return nil, utils.Unavailable(err)
	}

	seen := make(map[uint]struct{}, len(blocked)+len(blockedBy))
	excluded := make([]uint, 0, len(blocked)+len(blockedBy))
	for _, id := range append(blocked, blockedBy...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		excluded = append(excluded, id)
	}
	return excluded, nil
}

// ToggleFollow follows the target if no follow exists, otherwise unfollows.
// Following notifies the target and is logged; unfollowing is silent.
func (s *GraphService) ToggleFollow(actorID, targetID uint) (bool, error) {
	if actorID == targetID {
		return false, utils.Validation("cannot follow yourself")
	}

	var actor models.User
	if err := s.db.First(&actor, actorID).Error; err != nil {
		return false, utils.Unavailable(err)
	}
	var target models.User
	if err := s.db.First(&target, targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, utils.NotFound("user not found")
		}
		return false, utils.Unavailable(err)
	}

	var existing models.Follow
	err := s.db.Where("follower_user_id = ? AND following_user_id = ?", actorID, targetID).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		follow := models.Follow{FollowerUserID: actorID, FollowingUserID: targetID}
		if err := s.db.Create(&follow).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Lost a concurrent toggle race; already following.
				return true, nil
			}
			return false, utils.Unavailable(err)
		}

		s.notifications.Notify(targetID, fmt.Sprintf("%s started following you", actor.Username))
		if err := s.activity.Record(actorID, models.ActionFollow,
			fmt.Sprintf("%s started following %s", actor.Username, target.Username), &targetID); err != nil {
			s.logger.Warn("activity append failed after follow",
				"actor_id", actorID, "target_id", targetID, "error", err)
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
