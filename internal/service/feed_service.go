package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

type FeedService struct {
	feedRepo repository.FeedRepository
}

func NewFeedService(feedRepo repository.FeedRepository) *FeedService {
	return &FeedService{feedRepo: feedRepo}
}

// GetFeed returns the personalized timeline page plus the total for
// pagination. An empty feed is a success with total zero, a user who
// follows nobody still sees their own posts.
func (s *FeedService) GetFeed(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, int64, error) {
	span, ctx := observability.NewSpan(ctx, "feed.get")
	defer span.End()
	span.AddAttributes(attribute.Int64("user.id", int64(userID)))

	posts, err := s.feedRepo.GetFeed(ctx, userID, limit, offset)
	if err != nil {
		span.SetError(err)
		return nil, 0, err
	}
	total, err := s.feedRepo.CountFeed(ctx, userID)
	if err != nil {
		span.SetError(err)
		return nil, 0, err
	}
	span.AddAttributes(attribute.Int("feed.page_size", len(posts)))
	return posts, total, nil
}
