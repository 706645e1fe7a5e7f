package models

import (
	"time"
)

// Block is stored as a directional pair but visibility filtering treats it
// symmetrically: blocker and blocked disappear from each other's feeds.
type Block struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	BlockerUserID uint `gorm:"not null;uniqueIndex:idx_block_pair" json:"blocker_user_id"`
	BlockedUserID uint `gorm:"not null;uniqueIndex:idx_block_pair" json:"blocked_user_id"`

	BlockerUser User `gorm:"foreignKey:BlockerUserID" json:"blocker_user,omitempty"`
	BlockedUser User `gorm:"foreignKey:BlockedUserID" json:"blocked_user,omitempty"`
}
