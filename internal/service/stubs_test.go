package service

import (
	"context"
	"errors"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn      func(context.Context, *models.Post) error
	getByIDFn     func(context.Context, uint, uint) (*models.Post, error)
	getByUserIDFn func(context.Context, uint, int, int, uint) ([]*models.Post, error)
	countByUserFn func(context.Context, uint) (int64, error)
	listFn        func(context.Context, int, int, uint) ([]*models.Post, error)
	countAllFn    func(context.Context) (int64, error)
	searchFn      func(context.Context, string, int, int, uint) ([]*models.Post, error)
	countSearchFn func(context.Context, string) (int64, error)
	updateFn      func(context.Context, *models.Post) error
	deleteFn      func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *postRepoStub) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.getByUserIDFn(ctx, userID, limit, offset, currentUserID)
}
func (s *postRepoStub) CountByUser(ctx context.Context, userID uint) (int64, error) {
	return s.countByUserFn(ctx, userID)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.listFn(ctx, limit, offset, currentUserID)
}
func (s *postRepoStub) CountAll(ctx context.Context) (int64, error) {
	return s.countAllFn(ctx)
}
func (s *postRepoStub) Search(ctx context.Context, query string, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.searchFn(ctx, query, limit, offset, currentUserID)
}
func (s *postRepoStub) CountSearch(ctx context.Context, query string) (int64, error) {
	return s.countSearchFn(ctx, query)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:      func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:     func(_ context.Context, _, _ uint) (*models.Post, error) { return &models.Post{}, nil },
		getByUserIDFn: func(_ context.Context, _ uint, _, _ int, _ uint) ([]*models.Post, error) { return nil, nil },
		countByUserFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		listFn:        func(_ context.Context, _, _ int, _ uint) ([]*models.Post, error) { return nil, nil },
		countAllFn:    func(_ context.Context) (int64, error) { return 0, nil },
		searchFn:      func(_ context.Context, _ string, _, _ int, _ uint) ([]*models.Post, error) { return nil, nil },
		countSearchFn: func(_ context.Context, _ string) (int64, error) { return 0, nil },
		updateFn:      func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:      func(_ context.Context, _ uint) error { return nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn           func(context.Context, *models.User) error
	getByIDFn          func(context.Context, uint) (*models.User, error)
	getByUsernameFn    func(context.Context, string) (*models.User, error)
	getByIdentifierFn  func(context.Context, string) (*models.User, error)
	existsByUsernameFn func(context.Context, string) (bool, error)
	existsByEmailFn    func(context.Context, string) (bool, error)
	updateFn           func(context.Context, *models.User) error
	searchFn           func(context.Context, string, int, int) ([]models.User, error)
	countSearchFn      func(context.Context, string) (int64, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	return s.getByIdentifierFn(ctx, identifier)
}
func (s *userRepoStub) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return s.existsByUsernameFn(ctx, username)
}
func (s *userRepoStub) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.existsByEmailFn(ctx, email)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Search(ctx context.Context, query string, limit, offset int) ([]models.User, error) {
	return s.searchFn(ctx, query, limit, offset)
}
func (s *userRepoStub) CountSearch(ctx context.Context, query string) (int64, error) {
	return s.countSearchFn(ctx, query)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:           func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:          func(_ context.Context, _ uint) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn:    func(_ context.Context, _ string) (*models.User, error) { return &models.User{}, nil },
		getByIdentifierFn:  func(_ context.Context, _ string) (*models.User, error) { return &models.User{}, nil },
		existsByUsernameFn: func(_ context.Context, _ string) (bool, error) { return false, nil },
		existsByEmailFn:    func(_ context.Context, _ string) (bool, error) { return false, nil },
		updateFn:           func(_ context.Context, _ *models.User) error { return nil },
		searchFn:           func(_ context.Context, _ string, _, _ int) ([]models.User, error) { return nil, nil },
		countSearchFn:      func(_ context.Context, _ string) (int64, error) { return 0, nil },
	}
}

// likeRepoStub is a stub for repository.LikeRepository.
type likeRepoStub struct {
	createFn     func(context.Context, uint, uint) (*models.Like, error)
	deleteFn     func(context.Context, uint, uint) error
	existsFn     func(context.Context, uint, uint) (bool, error)
	listByPostFn func(context.Context, uint, int, int) ([]models.Like, error)
	countFn      func(context.Context, uint) (int64, error)
}

func (s *likeRepoStub) Create(ctx context.Context, userID, postID uint) (*models.Like, error) {
	return s.createFn(ctx, userID, postID)
}
func (s *likeRepoStub) Delete(ctx context.Context, userID, postID uint) error {
	return s.deleteFn(ctx, userID, postID)
}
func (s *likeRepoStub) Exists(ctx context.Context, userID, postID uint) (bool, error) {
	return s.existsFn(ctx, userID, postID)
}
func (s *likeRepoStub) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]models.Like, error) {
	return s.listByPostFn(ctx, postID, limit, offset)
}
func (s *likeRepoStub) CountByPost(ctx context.Context, postID uint) (int64, error) {
	return s.countFn(ctx, postID)
}

func noopLikeRepo() *likeRepoStub {
	return &likeRepoStub{
		createFn:     func(_ context.Context, _, _ uint) (*models.Like, error) { return &models.Like{}, nil },
		deleteFn:     func(_ context.Context, _, _ uint) error { return nil },
		existsFn:     func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		listByPostFn: func(_ context.Context, _ uint, _, _ int) ([]models.Like, error) { return nil, nil },
		countFn:      func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// repostRepoStub is a stub for repository.RepostRepository.
type repostRepoStub struct {
	createFn     func(context.Context, uint, uint) (*models.Repost, error)
	deleteFn     func(context.Context, uint, uint) error
	existsFn     func(context.Context, uint, uint) (bool, error)
	listByPostFn func(context.Context, uint, int, int) ([]models.Repost, error)
	countFn      func(context.Context, uint) (int64, error)
}

func (s *repostRepoStub) Create(ctx context.Context, userID, postID uint) (*models.Repost, error) {
	return s.createFn(ctx, userID, postID)
}
func (s *repostRepoStub) Delete(ctx context.Context, userID, postID uint) error {
	return s.deleteFn(ctx, userID, postID)
}
func (s *repostRepoStub) Exists(ctx context.Context, userID, postID uint) (bool, error) {
	return s.existsFn(ctx, userID, postID)
}
func (s *repostRepoStub) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]models.Repost, error) {
	return s.listByPostFn(ctx, postID, limit, offset)
}
func (s *repostRepoStub) CountByPost(ctx context.Context, postID uint) (int64, error) {
	return s.countFn(ctx, postID)
}

func noopRepostRepo() *repostRepoStub {
	return &repostRepoStub{
		createFn:     func(_ context.Context, _, _ uint) (*models.Repost, error) { return &models.Repost{}, nil },
		deleteFn:     func(_ context.Context, _, _ uint) error { return nil },
		existsFn:     func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		listByPostFn: func(_ context.Context, _ uint, _, _ int) ([]models.Repost, error) { return nil, nil },
		countFn:      func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// followRepoStub is a stub for repository.FollowRepository.
type followRepoStub struct {
	createFn         func(context.Context, uint, uint) (*models.Follow, error)
	deleteFn         func(context.Context, uint, uint) error
	existsFn         func(context.Context, uint, uint) (bool, error)
	listFollowersFn  func(context.Context, uint, int, int) ([]models.FollowerProfile, error)
	countFollowersFn func(context.Context, uint) (int64, error)
	listFollowingFn  func(context.Context, uint, int, int) ([]models.FollowerProfile, error)
	countFollowingFn func(context.Context, uint) (int64, error)
}

func (s *followRepoStub) Create(ctx context.Context, followerID, followingID uint) (*models.Follow, error) {
	return s.createFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Delete(ctx context.Context, followerID, followingID uint) error {
	return s.deleteFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Exists(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.existsFn(ctx, followerID, followingID)
}
func (s *followRepoStub) ListFollowers(ctx context.Context, userID uint, limit, offset int) ([]models.FollowerProfile, error) {
	return s.listFollowersFn(ctx, userID, limit, offset)
}
func (s *followRepoStub) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowersFn(ctx, userID)
}
func (s *followRepoStub) ListFollowing(ctx context.Context, userID uint, limit, offset int) ([]models.FollowerProfile, error) {
	return s.listFollowingFn(ctx, userID, limit, offset)
}
func (s *followRepoStub) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowingFn(ctx, userID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		createFn:         func(_ context.Context, _, _ uint) (*models.Follow, error) { return &models.Follow{}, nil },
		deleteFn:         func(_ context.Context, _, _ uint) error { return nil },
		existsFn:         func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		listFollowersFn:  func(_ context.Context, _ uint, _, _ int) ([]models.FollowerProfile, error) { return nil, nil },
		countFollowersFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		listFollowingFn:  func(_ context.Context, _ uint, _, _ int) ([]models.FollowerProfile, error) { return nil, nil },
		countFollowingFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listByPostFn func(context.Context, uint, int, int) ([]models.Comment, error)
	countFn      func(context.Context, uint) (int64, error)
	updateFn     func(context.Context, *models.Comment) error
	deleteFn     func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]models.Comment, error) {
	return s.listByPostFn(ctx, postID, limit, offset)
}
func (s *commentRepoStub) CountByPost(ctx context.Context, postID uint) (int64, error) {
	return s.countFn(ctx, postID)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:    func(_ context.Context, _ uint) (*models.Comment, error) { return &models.Comment{}, nil },
		listByPostFn: func(_ context.Context, _ uint, _, _ int) ([]models.Comment, error) { return nil, nil },
		countFn:      func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		updateFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
	}
}

// feedRepoStub is a stub for repository.FeedRepository.
type feedRepoStub struct {
	getFeedFn   func(context.Context, uint, int, int) ([]*models.Post, error)
	countFeedFn func(context.Context, uint) (int64, error)
}

func (s *feedRepoStub) GetFeed(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	return s.getFeedFn(ctx, userID, limit, offset)
}
func (s *feedRepoStub) CountFeed(ctx context.Context, userID uint) (int64, error) {
	return s.countFeedFn(ctx, userID)
}

// assertAppErrorCode asserts that err unwraps to an AppError with the
// given code.
func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeValidationError)
}
