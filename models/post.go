package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Post holds text and/or media content. A repost carries OriginalPostID
// pointing at the post it shares; the chain is acyclic because the original
// must already exist when the repost is inserted.
type Post struct {
	gorm.Model
	Content        string         `json:"content" gorm:"type:text"`
	Image          string         `json:"image" gorm:"type:text"`
	Video          string         `json:"video" gorm:"type:text"`
	Hashtags       pq.StringArray `json:"hashtags" gorm:"type:text[]"`
	UserID         uint           `json:"user_id" gorm:"not null;index"`
	User           User           `json:"user" gorm:"foreignKey:UserID"`
	OriginalPostID *uint          `json:"original_post_id" gorm:"index"`
	Original       *Post          `json:"original_post,omitempty" gorm:"foreignKey:OriginalPostID"`
	Comments       []Comment      `json:"comments,omitempty" gorm:"foreignKey:PostID"`
	Likes          []Like         `json:"likes,omitempty" gorm:"foreignKey:PostID"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// HasContent reports whether at least one of content, image or video is set.
func (p *Post) HasContent() bool {
	return p.Content != "" || p.Image != "" || p.Video != ""
}

// IsRepost reports whether the post shares another post.
func (p *Post) IsRepost() bool {
	return p.OriginalPostID != nil
}
