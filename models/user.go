package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
	RoleOwner = "owner"
)

type User struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	Username  string         `gorm:"unique;not null" json:"username"`
	Email     string         `gorm:"unique;not null" json:"-"` // never exposed in embedded profiles
	Role      string         `gorm:"not null;default:'user';type:varchar(10)" json:"role"`
	Bio       string         `json:"bio"`
	Avatar    string         `json:"avatar"`
	Posts     []Post         `json:"posts,omitempty" gorm:"foreignKey:UserID"`
	Comments  []Comment      `json:"comments,omitempty" gorm:"foreignKey:UserID"`
	Likes     []Like         `json:"likes,omitempty" gorm:"foreignKey:UserID"`
	Bookmarks []Bookmark     `json:"bookmarks,omitempty" gorm:"foreignKey:UserID"`
}

