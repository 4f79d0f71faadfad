package repository

import (
	"context"

	"ripple/internal/cache"
	"ripple/internal/models"

	"gorm.io/gorm"
)

// LikeRepository manages the like edge between users and posts.
type LikeRepository interface {
	Create(ctx context.Context, userID, postID uint) (*models.Like, error)
	Delete(ctx context.Context, userID, postID uint) error
	Exists(ctx context.Context, userID, postID uint) (bool, error)
	ListByPost(ctx context.Context, postID uint, limit, offset int) ([]models.Like, error)
	CountByPost(ctx context.Context, postID uint) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Create inserts the edge in a single statement and lets the composite
// unique index decide concurrent winners. There is no existence pre-check,
// a unique violation IS the already-liked signal.
func (r *likeRepository) Create(ctx context.Context, userID, postID uint) (*models.Like, error) {
	like := &models.Like{UserID: userID, PostID: postID}
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, models.NewConflictError(models.CodeAlreadyLiked, "Post already liked")
		}
		return nil, models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, postID)

	if err := r.db.WithContext(ctx).Preload("User").First(like, like.ID).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return like, nil
}

// Delete removes the edge physically. Zero rows affected means there was
// nothing to remove.
func (r *likeRepository) Delete(ctx context.Context, userID, postID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Like")
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}

func (r *likeRepository) Exists(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *likeRepository) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]models.Like, error) {
	var likes []models.Like
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&likes).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return likes, nil
}

func (r *likeRepository) CountByPost(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
