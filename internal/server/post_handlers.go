package server

import (
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

type postRequest struct {
	Content string `json:"content"`
}

// CreatePost creates a post for the authenticated user.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		UserID:  currentUserID(c),
		Content: req.Content,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondMessage(c, fiber.StatusCreated, post, "Post created")
}

// GetPosts returns the global listing, newest first.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	p := parsePagination(c)
	posts, total, err := s.postService.ListPosts(c.UserContext(), service.ListPostsInput{
		Limit:         p.Limit,
		Offset:        p.Offset(),
		CurrentUserID: currentUserID(c),
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondPage(c, posts, models.NewPagination(p.Page, p.Limit, total))
}

// SearchPosts performs a substring search over content and author names.
func (s *Server) SearchPosts(c *fiber.Ctx) error {
	p := parsePagination(c)
	posts, total, err := s.postService.SearchPosts(
		c.UserContext(), c.Query("q"), p.Limit, p.Offset(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondPage(c, posts, models.NewPagination(p.Page, p.Limit, total))
}

// GetPost returns one post with counters and author.
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	post, svcErr := s.postService.GetPost(c.UserContext(), id, currentUserID(c))
	if svcErr != nil {
		return models.RespondWithError(c, svcErr)
	}
	return models.Respond(c, fiber.StatusOK, post)
}

// GetUserPosts returns the posts authored by the given user.
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	p := parsePagination(c)
	posts, total, svcErr := s.postService.GetUserPosts(
		c.UserContext(), userID, p.Limit, p.Offset(), currentUserID(c))
	if svcErr != nil {
		return models.RespondWithError(c, svcErr)
	}
	return models.RespondPage(c, posts, models.NewPagination(p.Page, p.Limit, total))
}

// UpdatePost edits an owned post.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	post, svcErr := s.postService.UpdatePost(c.UserContext(), service.UpdatePostInput{
		UserID:  currentUserID(c),
		PostID:  id,
		Content: req.Content,
	})
	if svcErr != nil {
		return models.RespondWithError(c, svcErr)
	}
	return models.RespondMessage(c, fiber.StatusOK, post, "Post updated")
}

// DeletePost soft-deletes an owned post. Existing likes and comments keep
// their rows; the post just disappears from every listing.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if svcErr := s.postService.DeletePost(c.UserContext(), currentUserID(c), id); svcErr != nil {
		return models.RespondWithError(c, svcErr)
	}
	return models.RespondMessage(c, fiber.StatusOK, nil, "Post deleted")
}
