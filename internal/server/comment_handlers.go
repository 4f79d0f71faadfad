package server

import (
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

type commentRequest struct {
	Content string `json:"content"`
}

// CreateComment adds a comment to a post.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	comment, svcErr := s.commentService.CreateComment(c.UserContext(), service.CreateCommentInput{
		UserID:  currentUserID(c),
		PostID:  postID,
		Content: req.Content,
	})
	if svcErr != nil {
		return models.RespondWithError(c, svcErr)
	}
	return models.RespondMessage(c, fiber.StatusCreated, comment, "Comment created")
}

// GetComments lists the non-deleted comments on a post, newest first.
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	p := parsePagination(c)
	comments, total, svcErr := s.commentService.GetComments(c.UserContext(), postID, p.Limit, p.Offset())
	if svcErr != nil {
		return models.RespondWithError(c, svcErr)
	}
	return models.RespondPage(c, comments, models.NewPagination(p.Page, p.Limit, total))
}

// UpdateComment edits an owned comment.
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	comment, svcErr := s.commentService.UpdateComment(c.UserContext(), service.UpdateCommentInput{
		UserID:    currentUserID(c),
		CommentID: id,
		Content:   req.Content,
	})
	if svcErr != nil {
		return models.RespondWithError(c, svcErr)
	}
	return models.RespondMessage(c, fiber.StatusOK, comment, "Comment updated")
}

// DeleteComment soft-deletes an owned comment.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if svcErr := s.commentService.DeleteComment(c.UserContext(), currentUserID(c), id); svcErr != nil {
		return models.RespondWithError(c, svcErr)
	}
	return models.RespondMessage(c, fiber.StatusOK, nil, "Comment deleted")
}
