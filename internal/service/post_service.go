// Package service implements domain logic on top of the repositories.
package service

import (
	"context"
	"strings"

	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/repository"
	"ripple/internal/validation"

	"go.opentelemetry.io/otel/attribute"
)

type PostService struct {
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	UserID  uint
	Content string
}

type UpdatePostInput struct {
	UserID  uint
	PostID  uint
	Content string
}

type ListPostsInput struct {
	Limit         int
	Offset        int
	CurrentUserID uint
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	content, fieldErr := validation.Content("content", in.Content)
	if fieldErr != nil {
		return nil, models.NewValidationError(fieldErr.Message, *fieldErr)
	}

	post := &models.Post{
		UserID:  in.UserID,
		Content: content,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	// Reload with counters and the author profile for the response.
	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

func (s *PostService) GetPost(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id, currentUserID)
}

func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, int64, error) {
	posts, err := s.postRepo.List(ctx, in.Limit, in.Offset, in.CurrentUserID)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.postRepo.CountAll(ctx)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (s *PostService) GetUserPosts(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, int64, error) {
	posts, err := s.postRepo.GetByUserID(ctx, userID, limit, offset, currentUserID)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.postRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (s *PostService) SearchPosts(ctx context.Context, query string, limit, offset int, currentUserID uint) ([]*models.Post, int64, error) {
	if strings.TrimSpace(query) == "" {
		return nil, 0, models.NewValidationError("Search query is required")
	}

	span, ctx := observability.NewSpan(ctx, "posts.search")
	defer span.End()
	span.AddAttributes(attribute.Int("search.query_len", len(query)))

	posts, err := s.postRepo.Search(ctx, query, limit, offset, currentUserID)
	if err != nil {
		span.SetError(err)
		return nil, 0, err
	}
	total, err := s.postRepo.CountSearch(ctx, query)
	if err != nil {
		span.SetError(err)
		return nil, 0, err
	}
	return posts, total, nil
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	content, fieldErr := validation.Content("content", in.Content)
	if fieldErr != nil {
		return nil, models.NewValidationError(fieldErr.Message, *fieldErr)
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID, in.UserID)
	if err != nil {
		return nil, err
	}
	if post.UserID != in.UserID {
		return nil, models.NewForbiddenError("You can only update your own posts")
	}

	post.Content = content
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, in.PostID, in.UserID)
}

func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewForbiddenError("You can only delete your own posts")
	}
	return s.postRepo.Delete(ctx, postID)
}
