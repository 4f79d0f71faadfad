package repository

import (
	"context"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// FeedRepository reads the personalized timeline: posts authored by the
// user or by anyone the user follows.
type FeedRepository interface {
	GetFeed(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error)
	CountFeed(ctx context.Context, userID uint) (int64, error)
}

type feedRepository struct {
	db *gorm.DB
}

// NewFeedRepository creates a new feed repository
func NewFeedRepository(db *gorm.DB) FeedRepository {
	return &feedRepository{db: db}
}

// feedScope is the single predicate shared by the page query and the count
// query so pagination totals never drift from the rows returned.
func (r *feedRepository) feedScope(userID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		followed := r.db.Model(&models.Follow{}).
			Select("following_id").
			Where("follower_id = ?", userID)
		return db.Where("posts.user_id = ? OR posts.user_id IN (?)", userID, followed)
	}
}

func (r *feedRepository) GetFeed(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := applyPostDetails(r.db.WithContext(ctx), userID).
		Scopes(r.feedScope(userID), authorAliveScope).
		Preload("User").
		Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *feedRepository) CountFeed(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Scopes(r.feedScope(userID), authorAliveScope).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
