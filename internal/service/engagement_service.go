package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// EngagementService covers the two post-scoped toggle edges, likes and
// reposts. Both share the same contract: constraint-backed create, physical
// delete, membership check, paginated listing with counterpart profiles.
type EngagementService struct {
	postRepo   repository.PostRepository
	likeRepo   repository.LikeRepository
	repostRepo repository.RepostRepository
}

func NewEngagementService(
	postRepo repository.PostRepository,
	likeRepo repository.LikeRepository,
	repostRepo repository.RepostRepository,
) *EngagementService {
	return &EngagementService{
		postRepo:   postRepo,
		likeRepo:   likeRepo,
		repostRepo: repostRepo,
	}
}

func (s *EngagementService) LikePost(ctx context.Context, userID, postID uint) (*models.Like, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, userID); err != nil {
		return nil, err
	}
	return s.likeRepo.Create(ctx, userID, postID)
}

// UnlikePost removes the edge without checking the post first, so stale
// likes on soft-deleted posts can still be withdrawn.
func (s *EngagementService) UnlikePost(ctx context.Context, userID, postID uint) error {
	return s.likeRepo.Delete(ctx, userID, postID)
}

func (s *EngagementService) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.likeRepo.Exists(ctx, userID, postID)
}

func (s *EngagementService) GetLikes(ctx context.Context, postID uint, limit, offset int) ([]models.Like, int64, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return nil, 0, err
	}
	likes, err := s.likeRepo.ListByPost(ctx, postID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.likeRepo.CountByPost(ctx, postID)
	if err != nil {
		return nil, 0, err
	}
	return likes, total, nil
}

func (s *EngagementService) RepostPost(ctx context.Context, userID, postID uint) (*models.Repost, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, userID); err != nil {
		return nil, err
	}
	return s.repostRepo.Create(ctx, userID, postID)
}

func (s *EngagementService) UnrepostPost(ctx context.Context, userID, postID uint) error {
	return s.repostRepo.Delete(ctx, userID, postID)
}

func (s *EngagementService) IsReposted(ctx context.Context, userID, postID uint) (bool, error) {
	return s.repostRepo.Exists(ctx, userID, postID)
}

func (s *EngagementService) GetReposts(ctx context.Context, postID uint, limit, offset int) ([]models.Repost, int64, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return nil, 0, err
	}
	reposts, err := s.repostRepo.ListByPost(ctx, postID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repostRepo.CountByPost(ctx, postID)
	if err != nil {
		return nil, 0, err
	}
	return reposts, total, nil
}
