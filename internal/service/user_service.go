package service

import (
	"context"
	"strings"

	"ripple/internal/models"
	"ripple/internal/repository"
)

type UserService struct {
	userRepo   repository.UserRepository
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
}

type UpdateProfileInput struct {
	UserID      uint
	DisplayName *string
	Bio         *string
	AvatarEmoji *string
}

func NewUserService(
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	followRepo repository.FollowRepository,
) *UserService {
	return &UserService{
		userRepo:   userRepo,
		postRepo:   postRepo,
		followRepo: followRepo,
	}
}

// GetProfileByUsername returns the user with their stats block.
func (s *UserService) GetProfileByUsername(ctx context.Context, username string) (*models.UserProfile, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.withStats(ctx, user)
}

func (s *UserService) GetProfileByID(ctx context.Context, id uint) (*models.UserProfile, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withStats(ctx, user)
}

func (s *UserService) withStats(ctx context.Context, user *models.User) (*models.UserProfile, error) {
	posts, err := s.postRepo.CountByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	followers, err := s.followRepo.CountFollowers(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.CountFollowing(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &models.UserProfile{
		User: *user,
		Stats: models.ProfileStats{
			PostsCount:     posts,
			FollowersCount: followers,
			FollowingCount: following,
		},
	}, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.DisplayName != nil {
		name := strings.TrimSpace(*in.DisplayName)
		if len([]rune(name)) > 50 {
			return nil, models.NewValidationError("Display name must be 50 characters or fewer",
				models.FieldError{Field: "display_name", Message: "Display name must be 50 characters or fewer"})
		}
		user.DisplayName = name
	}
	if in.Bio != nil {
		bio := strings.TrimSpace(*in.Bio)
		if len([]rune(bio)) > 160 {
			return nil, models.NewValidationError("Bio must be 160 characters or fewer",
				models.FieldError{Field: "bio", Message: "Bio must be 160 characters or fewer"})
		}
		user.Bio = bio
	}
	if in.AvatarEmoji != nil {
		user.AvatarEmoji = strings.TrimSpace(*in.AvatarEmoji)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) SearchUsers(ctx context.Context, query string, limit, offset int) ([]models.User, int64, error) {
	if strings.TrimSpace(query) == "" {
		return nil, 0, models.NewValidationError("Search query is required")
	}
	users, err := s.userRepo.Search(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.userRepo.CountSearch(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
