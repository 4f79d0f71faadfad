package service

import (
	"context"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollow(t *testing.T) {
	t.Run("rejects self-follow", func(t *testing.T) {
		users := noopUserRepo()
		users.getByIDFn = func(_ context.Context, _ uint) (*models.User, error) {
			t.Fatal("self-follow must be rejected before any lookup")
			return nil, nil
		}

		svc := NewFollowService(noopFollowRepo(), users)
		_, err := svc.Follow(context.Background(), 3, 3)
		assertAppErrorCode(t, err, models.CodeInvalidAction)
	})

	t.Run("missing target is not found", func(t *testing.T) {
		users := noopUserRepo()
		users.getByIDFn = func(_ context.Context, _ uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User")
		}

		svc := NewFollowService(noopFollowRepo(), users)
		_, err := svc.Follow(context.Background(), 1, 999)
		assertAppErrorCode(t, err, models.CodeNotFound)
	})

	t.Run("duplicate follow surfaces conflict", func(t *testing.T) {
		follows := noopFollowRepo()
		follows.createFn = func(_ context.Context, _, _ uint) (*models.Follow, error) {
			return nil, models.NewConflictError(models.CodeAlreadyFollowing, "Already following this user")
		}

		svc := NewFollowService(follows, noopUserRepo())
		_, err := svc.Follow(context.Background(), 1, 2)
		assertAppErrorCode(t, err, models.CodeAlreadyFollowing)
	})

	t.Run("creates the edge", func(t *testing.T) {
		follows := noopFollowRepo()
		follows.createFn = func(_ context.Context, followerID, followingID uint) (*models.Follow, error) {
			return &models.Follow{FollowerID: followerID, FollowingID: followingID}, nil
		}

		svc := NewFollowService(follows, noopUserRepo())
		follow, err := svc.Follow(context.Background(), 1, 2)
		require.NoError(t, err)
		assert.Equal(t, uint(1), follow.FollowerID)
		assert.Equal(t, uint(2), follow.FollowingID)
	})
}

func TestUnfollow(t *testing.T) {
	t.Run("rejects self-unfollow", func(t *testing.T) {
		svc := NewFollowService(noopFollowRepo(), noopUserRepo())
		err := svc.Unfollow(context.Background(), 3, 3)
		assertAppErrorCode(t, err, models.CodeInvalidAction)
	})

	t.Run("missing edge is not found", func(t *testing.T) {
		follows := noopFollowRepo()
		follows.deleteFn = func(_ context.Context, _, _ uint) error {
			return models.NewNotFoundError("Follow")
		}

		svc := NewFollowService(follows, noopUserRepo())
		err := svc.Unfollow(context.Background(), 1, 2)
		assertAppErrorCode(t, err, models.CodeNotFound)
	})
}

func TestGetFollowers(t *testing.T) {
	t.Run("missing user is not found", func(t *testing.T) {
		users := noopUserRepo()
		users.getByIDFn = func(_ context.Context, _ uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User")
		}

		svc := NewFollowService(noopFollowRepo(), users)
		_, _, err := svc.GetFollowers(context.Background(), 999, 20, 0)
		assertAppErrorCode(t, err, models.CodeNotFound)
	})

	t.Run("returns profiles with total", func(t *testing.T) {
		follows := noopFollowRepo()
		follows.listFollowersFn = func(_ context.Context, _ uint, _, _ int) ([]models.FollowerProfile, error) {
			return []models.FollowerProfile{{ID: 2, Username: "ada"}}, nil
		}
		follows.countFollowersFn = func(_ context.Context, _ uint) (int64, error) { return 1, nil }

		svc := NewFollowService(follows, noopUserRepo())
		profiles, total, err := svc.GetFollowers(context.Background(), 1, 20, 0)
		require.NoError(t, err)
		require.Len(t, profiles, 1)
		assert.Equal(t, "ada", profiles[0].Username)
		assert.Equal(t, int64(1), total)
	})
}
