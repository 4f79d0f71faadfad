package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

// Follow creates the edge. Self-follows are rejected here, before any
// insert is attempted; the unique constraint handles duplicate edges.
func (s *FollowService) Follow(ctx context.Context, followerID, followingID uint) (*models.Follow, error) {
	if followerID == followingID {
		return nil, models.NewInvalidActionError("You cannot follow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, followingID); err != nil {
		return nil, err
	}
	return s.followRepo.Create(ctx, followerID, followingID)
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, followingID uint) error {
	if followerID == followingID {
		return models.NewInvalidActionError("You cannot unfollow yourself")
	}
	return s.followRepo.Delete(ctx, followerID, followingID)
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.followRepo.Exists(ctx, followerID, followingID)
}

func (s *FollowService) GetFollowers(ctx context.Context, userID uint, limit, offset int) ([]models.FollowerProfile, int64, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, 0, err
	}
	followers, err := s.followRepo.ListFollowers(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.followRepo.CountFollowers(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return followers, total, nil
}

func (s *FollowService) GetFollowing(ctx context.Context, userID uint, limit, offset int) ([]models.FollowerProfile, int64, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, 0, err
	}
	following, err := s.followRepo.ListFollowing(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.followRepo.CountFollowing(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return following, total, nil
}
