package models

import (
	"time"
)

// Notification is the audit row written when an event is published. Delivery
// goes through the in-memory dispatcher and never reads these back.
type Notification struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Message   string    `gorm:"not null" json:"message"`
}
