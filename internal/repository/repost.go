package repository

import (
	"context"

	"ripple/internal/cache"
	"ripple/internal/models"

	"gorm.io/gorm"
)

// RepostRepository manages the repost edge between users and posts.
// Same constraint-backed contract as LikeRepository.
type RepostRepository interface {
	Create(ctx context.Context, userID, postID uint) (*models.Repost, error)
	Delete(ctx context.Context, userID, postID uint) error
	Exists(ctx context.Context, userID, postID uint) (bool, error)
	ListByPost(ctx context.Context, postID uint, limit, offset int) ([]models.Repost, error)
	CountByPost(ctx context.Context, postID uint) (int64, error)
}

type repostRepository struct {
	db *gorm.DB
}

// NewRepostRepository creates a new repost repository
func NewRepostRepository(db *gorm.DB) RepostRepository {
	return &repostRepository{db: db}
}

func (r *repostRepository) Create(ctx context.Context, userID, postID uint) (*models.Repost, error) {
	repost := &models.Repost{UserID: userID, PostID: postID}
	if err := r.db.WithContext(ctx).Create(repost).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, models.NewConflictError(models.CodeAlreadyReposted, "Post already reposted")
		}
		return nil, models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, postID)

	if err := r.db.WithContext(ctx).Preload("User").First(repost, repost.ID).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return repost, nil
}

func (r *repostRepository) Delete(ctx context.Context, userID, postID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Repost{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Repost")
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}

func (r *repostRepository) Exists(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Repost{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *repostRepository) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]models.Repost, error) {
	var reposts []models.Repost
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reposts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return reposts, nil
}

func (r *repostRepository) CountByPost(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Repost{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
