package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// FollowUser follows the target user.
func (s *Server) FollowUser(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	follow, svcErr := s.followService.Follow(c.UserContext(), currentUserID(c), targetID)
	if svcErr != nil {
		return models.RespondWithError(c, svcErr)
	}
	return models.RespondMessage(c, fiber.StatusCreated, follow, "Followed")
}

// UnfollowUser removes the follow edge.
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	if svcErr := s.followService.Unfollow(c.UserContext(), currentUserID(c), targetID); svcErr != nil {
		return models.RespondWithError(c, svcErr)
	}
	return models.RespondMessage(c, fiber.StatusOK, nil, "Unfollowed")
}

// CheckFollow reports whether the authenticated user follows the target.
func (s *Server) CheckFollow(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	following, svcErr := s.followService.IsFollowing(c.UserContext(), currentUserID(c), targetID)
	if svcErr != nil {
		return models.RespondWithError(c, svcErr)
	}
	return models.Respond(c, fiber.StatusOK, fiber.Map{"following": following})
}

// GetFollowers lists the users following the target, newest edge first.
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	p := parsePagination(c)
	followers, total, svcErr := s.followService.GetFollowers(c.UserContext(), userID, p.Limit, p.Offset())
	if svcErr != nil {
		return models.RespondWithError(c, svcErr)
	}
	return models.RespondPage(c, followers, models.NewPagination(p.Page, p.Limit, total))
}

// GetFollowing lists the users the target follows.
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	p := parsePagination(c)
	following, total, svcErr := s.followService.GetFollowing(c.UserContext(), userID, p.Limit, p.Offset())
	if svcErr != nil {
		return models.RespondWithError(c, svcErr)
	}
	return models.RespondPage(c, following, models.NewPagination(p.Page, p.Limit, total))
}
