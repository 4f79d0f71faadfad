package models

import "time"

// Repost is a user-post repost edge. Same constraint-backed shape as
// Like: unique (user_id, post_id), physical delete.
type Repost struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_reposts_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_reposts_user_post;index" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	Post Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}
