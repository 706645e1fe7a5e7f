package models

import (
	"time"
)

type ActionType string

const (
	ActionPost    ActionType = "POST"
	ActionLike    ActionType = "LIKE"
	ActionFollow  ActionType = "FOLLOW"
	ActionComment ActionType = "COMMENT"
)

// Activity is an append-only audit entry. Rows are never updated or deleted.
type Activity struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`
	ActorID    uint       `gorm:"not null;index" json:"actor_id"`
	Actor      User       `gorm:"foreignKey:ActorID" json:"actor"`
	ActionType ActionType `gorm:"not null;type:varchar(10)" json:"action_type"`
	TargetID   *uint      `json:"target_id"`
	Message    string     `gorm:"not null" json:"message"`
}
