// Package models contains domain models and shared response types.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account. The password hash is never
// serialized; soft-deleted users disappear from every query through
// the gorm.DeletedAt filter.
type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Username    string         `gorm:"uniqueIndex;not null;size:30" json:"username"`
	Email       string         `gorm:"uniqueIndex;not null" json:"email"`
	Password    string         `gorm:"column:password_hash;not null" json:"-"`
	DisplayName string         `gorm:"size:50" json:"display_name"`
	Bio         string         `gorm:"size:160" json:"bio"`
	AvatarEmoji string         `gorm:"size:16" json:"avatar_emoji"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// ProfileStats is the per-user counter block attached to profile reads.
type ProfileStats struct {
	PostsCount     int64 `json:"posts_count"`
	FollowersCount int64 `json:"followers_count"`
	FollowingCount int64 `json:"following_count"`
}

// UserProfile is a user plus their stats, as returned by profile endpoints.
type UserProfile struct {
	User
	Stats ProfileStats `json:"stats"`
}

// FollowerProfile is a public user row annotated with when the follow
// edge was created. Used by follower/following listings.
type FollowerProfile struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	AvatarEmoji string    `json:"avatar_emoji"`
	Bio         string    `json:"bio"`
	FollowedAt  time.Time `json:"followed_at"`
}
