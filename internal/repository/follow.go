package repository

import (
	"context"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// FollowRepository manages the directed follower -> following edge.
type FollowRepository interface {
	Create(ctx context.Context, followerID, followingID uint) (*models.Follow, error)
	Delete(ctx context.Context, followerID, followingID uint) error
	Exists(ctx context.Context, followerID, followingID uint) (bool, error)
	ListFollowers(ctx context.Context, userID uint, limit, offset int) ([]models.FollowerProfile, error)
	CountFollowers(ctx context.Context, userID uint) (int64, error)
	ListFollowing(ctx context.Context, userID uint, limit, offset int) ([]models.FollowerProfile, error)
	CountFollowing(ctx context.Context, userID uint) (int64, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create inserts the edge and maps the unique violation to the domain
// conflict. Self-follow checks belong to the service layer.
func (r *followRepository) Create(ctx context.Context, followerID, followingID uint) (*models.Follow, error) {
	follow := &models.Follow{FollowerID: followerID, FollowingID: followingID}
	if err := r.db.WithContext(ctx).Create(follow).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, models.NewConflictError(models.CodeAlreadyFollowing, "Already following this user")
		}
		return nil, models.NewInternalError(err)
	}
	return follow, nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followingID uint) error {
	res := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Follow")
	}
	return nil
}

func (r *followRepository) Exists(ctx context.Context, followerID, followingID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// ListFollowers joins the public profile of each follower. The join filters
// soft-deleted users explicitly because Table() bypasses the model callbacks.
func (r *followRepository) ListFollowers(ctx context.Context, userID uint, limit, offset int) ([]models.FollowerProfile, error) {
	var profiles []models.FollowerProfile
	err := r.db.WithContext(ctx).
		Table("follows").
		Select("users.id, users.username, users.display_name, users.avatar_emoji, users.bio, follows.created_at AS followed_at").
		Joins("JOIN users ON users.id = follows.follower_id AND users.deleted_at IS NULL").
		Where("follows.following_id = ?", userID).
		Order("follows.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&profiles).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}

func (r *followRepository) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("follows").
		Joins("JOIN users ON users.id = follows.follower_id AND users.deleted_at IS NULL").
		Where("follows.following_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *followRepository) ListFollowing(ctx context.Context, userID uint, limit, offset int) ([]models.FollowerProfile, error) {
	var profiles []models.FollowerProfile
	err := r.db.WithContext(ctx).
		Table("follows").
		Select("users.id, users.username, users.display_name, users.avatar_emoji, users.bio, follows.created_at AS followed_at").
		Joins("JOIN users ON users.id = follows.following_id AND users.deleted_at IS NULL").
		Where("follows.follower_id = ?", userID).
		Order("follows.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&profiles).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}

func (r *followRepository) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("follows").
		Joins("JOIN users ON users.id = follows.following_id AND users.deleted_at IS NULL").
		Where("follows.follower_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
