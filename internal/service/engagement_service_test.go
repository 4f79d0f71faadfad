package service

import (
	"context"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikePost(t *testing.T) {
	t.Run("checks the post before inserting", func(t *testing.T) {
		posts := noopPostRepo()
		posts.getByIDFn = func(_ context.Context, _, _ uint) (*models.Post, error) {
			return nil, models.NewNotFoundError("Post")
		}
		likes := noopLikeRepo()
		likes.createFn = func(_ context.Context, _, _ uint) (*models.Like, error) {
			t.Fatal("Create should not be called for a missing post")
			return nil, nil
		}

		svc := NewEngagementService(posts, likes, noopRepostRepo())
		_, err := svc.LikePost(context.Background(), 1, 5)
		assertAppErrorCode(t, err, models.CodeNotFound)
	})

	t.Run("duplicate like surfaces conflict", func(t *testing.T) {
		likes := noopLikeRepo()
		likes.createFn = func(_ context.Context, _, _ uint) (*models.Like, error) {
			return nil, models.NewConflictError(models.CodeAlreadyLiked, "Post already liked")
		}

		svc := NewEngagementService(noopPostRepo(), likes, noopRepostRepo())
		_, err := svc.LikePost(context.Background(), 1, 5)
		assertAppErrorCode(t, err, models.CodeAlreadyLiked)
	})

	t.Run("returns the created like", func(t *testing.T) {
		likes := noopLikeRepo()
		likes.createFn = func(_ context.Context, userID, postID uint) (*models.Like, error) {
			return &models.Like{ID: 3, UserID: userID, PostID: postID}, nil
		}

		svc := NewEngagementService(noopPostRepo(), likes, noopRepostRepo())
		like, err := svc.LikePost(context.Background(), 1, 5)
		require.NoError(t, err)
		assert.Equal(t, uint(1), like.UserID)
		assert.Equal(t, uint(5), like.PostID)
	})
}

func TestUnlikePost(t *testing.T) {
	t.Run("missing like is not found", func(t *testing.T) {
		likes := noopLikeRepo()
		likes.deleteFn = func(_ context.Context, _, _ uint) error {
			return models.NewNotFoundError("Like")
		}

		svc := NewEngagementService(noopPostRepo(), likes, noopRepostRepo())
		err := svc.UnlikePost(context.Background(), 1, 5)
		assertAppErrorCode(t, err, models.CodeNotFound)
	})

	t.Run("skips the post existence check", func(t *testing.T) {
		posts := noopPostRepo()
		posts.getByIDFn = func(_ context.Context, _, _ uint) (*models.Post, error) {
			t.Fatal("unlike must not gate on the post")
			return nil, nil
		}

		svc := NewEngagementService(posts, noopLikeRepo(), noopRepostRepo())
		assert.NoError(t, svc.UnlikePost(context.Background(), 1, 5))
	})
}

func TestRepostPost(t *testing.T) {
	t.Run("duplicate repost surfaces conflict", func(t *testing.T) {
		reposts := noopRepostRepo()
		reposts.createFn = func(_ context.Context, _, _ uint) (*models.Repost, error) {
			return nil, models.NewConflictError(models.CodeAlreadyReposted, "Post already reposted")
		}

		svc := NewEngagementService(noopPostRepo(), noopLikeRepo(), reposts)
		_, err := svc.RepostPost(context.Background(), 1, 5)
		assertAppErrorCode(t, err, models.CodeAlreadyReposted)
	})

	t.Run("missing post blocks the repost", func(t *testing.T) {
		posts := noopPostRepo()
		posts.getByIDFn = func(_ context.Context, _, _ uint) (*models.Post, error) {
			return nil, models.NewNotFoundError("Post")
		}

		svc := NewEngagementService(posts, noopLikeRepo(), noopRepostRepo())
		_, err := svc.RepostPost(context.Background(), 1, 5)
		assertAppErrorCode(t, err, models.CodeNotFound)
	})
}

func TestGetLikes(t *testing.T) {
	t.Run("missing post is not found", func(t *testing.T) {
		posts := noopPostRepo()
		posts.getByIDFn = func(_ context.Context, _, _ uint) (*models.Post, error) {
			return nil, models.NewNotFoundError("Post")
		}

		svc := NewEngagementService(posts, noopLikeRepo(), noopRepostRepo())
		_, _, err := svc.GetLikes(context.Background(), 5, 20, 0)
		assertAppErrorCode(t, err, models.CodeNotFound)
	})

	t.Run("returns likes with total", func(t *testing.T) {
		likes := noopLikeRepo()
		likes.listByPostFn = func(_ context.Context, _ uint, _, _ int) ([]models.Like, error) {
			return []models.Like{{ID: 1}, {ID: 2}}, nil
		}
		likes.countFn = func(_ context.Context, _ uint) (int64, error) { return 8, nil }

		svc := NewEngagementService(noopPostRepo(), likes, noopRepostRepo())
		got, total, err := svc.GetLikes(context.Background(), 5, 20, 0)
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, int64(8), total)
	})
}

func TestIsLikedIsReposted(t *testing.T) {
	likes := noopLikeRepo()
	likes.existsFn = func(_ context.Context, userID, postID uint) (bool, error) {
		return userID == 1 && postID == 5, nil
	}
	reposts := noopRepostRepo()
	reposts.existsFn = func(_ context.Context, _, _ uint) (bool, error) { return false, nil }

	svc := NewEngagementService(noopPostRepo(), likes, reposts)

	liked, err := svc.IsLiked(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.True(t, liked)

	reposted, err := svc.IsReposted(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.False(t, reposted)
}
