package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// LikePost likes a post. A concurrent duplicate resolves to ALREADY_LIKED
// via the unique constraint, never a double row.
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	like, svcErr := s.engagementService.LikePost(c.UserContext(), currentUserID(c), postID)
	if svcErr != nil {
		return models.RespondWithError(c, svcErr)
	}
	return models.RespondMessage(c, fiber.StatusCreated, like, "Post liked")
}

// UnlikePost removes the like.
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	if svcErr := s.engagementService.UnlikePost(c.UserContext(), currentUserID(c), postID); svcErr != nil {
		return models.RespondWithError(c, svcErr)
	}
	return models.RespondMessage(c, fiber.StatusOK, nil, "Like removed")
}

// CheckLike reports whether the authenticated user likes the post.
func (s *Server) CheckLike(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	liked, svcErr := s.engagementService.IsLiked(c.UserContext(), currentUserID(c), postID)
	if svcErr != nil {
		return models.RespondWithError(c, svcErr)
	}
	return models.Respond(c, fiber.StatusOK, fiber.Map{"liked": liked})
}

// GetLikes lists the users who liked a post.
func (s *Server) GetLikes(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	p := parsePagination(c)
	likes, total, svcErr := s.engagementService.GetLikes(c.UserContext(), postID, p.Limit, p.Offset())
	if svcErr != nil {
		return models.RespondWithError(c, svcErr)
	}
	return models.RespondPage(c, likes, models.NewPagination(p.Page, p.Limit, total))
}

// RepostPost reposts a post.
func (s *Server) RepostPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	repost, svcErr := s.engagementService.RepostPost(c.UserContext(), currentUserID(c), postID)
	if svcErr != nil {
		return models.RespondWithError(c, svcErr)
	}
	return models.RespondMessage(c, fiber.StatusCreated, repost, "Post reposted")
}

// UnrepostPost removes the repost.
func (s *Server) UnrepostPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	if svcErr := s.engagementService.UnrepostPost(c.UserContext(), currentUserID(c), postID); svcErr != nil {
		return models.RespondWithError(c, svcErr)
	}
	return models.RespondMessage(c, fiber.StatusOK, nil, "Repost removed")
}

// CheckRepost reports whether the authenticated user reposted the post.
func (s *Server) CheckRepost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	reposted, svcErr := s.engagementService.IsReposted(c.UserContext(), currentUserID(c), postID)
	if svcErr != nil {
		return models.RespondWithError(c, svcErr)
	}
	return models.Respond(c, fiber.StatusOK, fiber.Map{"reposted": reposted})
}

// GetReposts lists the users who reposted a post.
func (s *Server) GetReposts(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	p := parsePagination(c)
	reposts, total, svcErr := s.engagementService.GetReposts(c.UserContext(), postID, p.Limit, p.Offset())
	if svcErr != nil {
		return models.RespondWithError(c, svcErr)
	}
	return models.RespondPage(c, reposts, models.NewPagination(p.Page, p.Limit, total))
}
