package services

import (
	"gorm.io/gorm"

	"github.com/ripplefeed/api-go/models"
	"github.com/ripplefeed/api-go/utils"
)

const DefaultActivityPageSize = 50

// ActivityService is the append-only audit trail. Entries are never updated
// or deleted and the feed it serves is global and unfiltered.
type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

// Record appends one activity entry. The id and timestamp are assigned by
// the store.
func (s *ActivityService) Record(actorID uint, action models.ActionType, message string, targetID *uint) error {
	activity := models.Activity{
		ActorID:    actorID,
		ActionType: action,
		TargetID:   targetID,
		Message:    message,
	}
	if err := s.db.Create(&activity).Error; err != nil {
		return utils.Unavailable(err)
	}
	return nil
}

// Feed returns entries newest first. Ties on the timestamp fall back to
// insertion order via the id. An offset past the end yields an empty page.
func (s *ActivityService) Feed(limit, offset int) ([]models.Activity, error) {
	if limit <= 0 {
		limit = DefaultActivityPageSize
	}
	if offset < 0 {
		offset = 0
	}

	var activities []models.Activity
	err := s.db.Preload("Actor").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&activities).Error
	if err != nil {
		return nil, utils.Unavailable(err)
	}
	return activities, nil
}
