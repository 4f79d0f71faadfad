// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"ripple/internal/cache"
	"ripple/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error)
	GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
	List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error)
	CountAll(ctx context.Context) (int64, error)
	Search(ctx context.Context, query string, limit, offset int, currentUserID uint) ([]*models.Post, error)
	CountSearch(ctx context.Context, query string) (int64, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// applyPostDetails annotates the SELECT with per-row engagement counters and,
// when a user is resolved, that user's liked/reposted flags. The counters are
// correlated subqueries so every listing carries them in a single query;
// comment_count only sees non-deleted comments.
func applyPostDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "posts.*, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) AS like_count, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id AND comments.deleted_at IS NULL) AS comment_count, " +
		"(SELECT COUNT(*) FROM reposts WHERE reposts.post_id = posts.id) AS repost_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+
			", EXISTS(SELECT 1 FROM likes WHERE likes.post_id = posts.id AND likes.user_id = ?) AS liked"+
			", EXISTS(SELECT 1 FROM reposts WHERE reposts.post_id = posts.id AND reposts.user_id = ?) AS reposted",
			currentUserID, currentUserID)
	}

	return db.Select(selectQuery + ", false AS liked, false AS reposted")
}

// authorAliveScope hides posts whose author account has been soft-deleted.
// Every post read path applies it so a removed account disappears from
// single reads, listings, search, and the feed at once.
func authorAliveScope(db *gorm.DB) *gorm.DB {
	return db.Joins("JOIN users ON users.id = posts.user_id AND users.deleted_at IS NULL")
}

// searchScope restricts posts to those whose content or author matches the
// case-insensitive substring. Listing and count queries share this predicate.
func searchScope(query string) func(*gorm.DB) *gorm.DB {
	pattern := "%" + strings.TrimSpace(query) + "%"
	return func(db *gorm.DB) *gorm.DB {
		return authorAliveScope(db).
			Where("posts.content ILIKE ? OR users.username ILIKE ? OR users.display_name ILIKE ?",
				pattern, pattern, pattern)
	}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	var post models.Post

	var err error
	if currentUserID == 0 {
		// Anonymous reads are cache-friendly: the flags are always false and
		// toggle writes invalidate the key.
		err = cache.Aside(ctx, cache.PostKey(id), &post, cache.PostTTL, func() error {
			return applyPostDetails(r.db.WithContext(ctx), 0).
				Scopes(authorAliveScope).
				Preload("User").
				First(&post, id).Error
		})
	} else {
		err = applyPostDetails(r.db.WithContext(ctx), currentUserID).
			Scopes(authorAliveScope).
			Preload("User").
			First(&post, id).Error
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post")
		}
		return nil, models.NewInternalError(err)
	}

	return &post, nil
}

func (r *postRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Scopes(authorAliveScope).
		Preload("User").
		Where("posts.user_id = ?", userID).
		Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Scopes(authorAliveScope).
		Where("posts.user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *postRepository) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Scopes(authorAliveScope).
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

func (r *postRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Scopes(authorAliveScope).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *postRepository) Search(ctx context.Context, query string, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Scopes(searchScope(query)).
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

func (r *postRepository) CountSearch(ctx context.Context, query string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Scopes(searchScope(query)).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	err := r.db.WithContext(ctx).
		Model(post).
		Updates(map[string]any{"content": post.Content}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, post.ID)
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Post{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Post")
	}
	cache.InvalidatePost(ctx, id)
	return nil
}
