package models

import (
	"time"

	"gorm.io/gorm"
)

// MaxContentLen is the character limit for post and comment bodies.
const MaxContentLen = 500

// Post is a short text update. The count and flag fields are computed
// in the SELECT (gorm "->" read-only fields) and never written back.
type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	User    User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	Content string `gorm:"type:text;not null" json:"content"`

	LikeCount    int64 `gorm:"->;-:migration" json:"like_count"`
	CommentCount int64 `gorm:"->;-:migration" json:"comment_count"`
	RepostCount  int64 `gorm:"->;-:migration" json:"repost_count"`
	Liked        bool  `gorm:"->;-:migration" json:"liked"`
	Reposted     bool  `gorm:"->;-:migration" json:"reposted"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
