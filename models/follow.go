package models

import (
	"time"
)

// Follow is informational only; it never gates feed visibility.
type Follow struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	FollowerUserID  uint `gorm:"not null;uniqueIndex:idx_follow_pair" json:"follower_user_id"`
	FollowingUserID uint `gorm:"not null;uniqueIndex:idx_follow_pair" json:"following_user_id"`

	FollowerUser  User `gorm:"foreignKey:FollowerUserID" json:"follower_user,omitempty"`
	FollowingUser User `gorm:"foreignKey:FollowingUserID" json:"following_user,omitempty"`
}
