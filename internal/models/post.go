package models

import (
	"time"

	"gorm.io/gorm"
)

// Post is a feed entry. Name and Avatar are a snapshot of the author at
// creation time; comments and likes are exclusively owned sub-records.
type Post struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Text      string         `gorm:"type:text;not null" json:"text"`
	Name      string         `json:"name"`
	Avatar    string         `json:"avatar"`
	UserID    uint           `gorm:"index;not null" json:"user_id"`
	Comments  []Comment      `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments"`
	Likes     []Like         `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"likes"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Comment is appended to a post's comment list, newest at the end.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"index;not null" json:"-"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

// Like marks that a user liked a post. The composite unique index gives the
// list set semantics: at most one like per user per post.
type Like struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	PostID uint `gorm:"uniqueIndex:idx_likes_post_user;not null" json:"-"`
	UserID uint `gorm:"uniqueIndex:idx_likes_post_user;not null" json:"user_id"`
}
