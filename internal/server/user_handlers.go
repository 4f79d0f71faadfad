package server

import (
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

type updateProfileRequest struct {
	DisplayName *string `json:"display_name"`
	Bio         *string `json:"bio"`
	AvatarEmoji *string `json:"avatar_emoji"`
}

// SearchUsers searches usernames and display names.
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	p := parsePagination(c)
	users, total, err := s.userService.SearchUsers(c.UserContext(), c.Query("q"), p.Limit, p.Offset())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondPage(c, users, models.NewPagination(p.Page, p.Limit, total))
}

// GetUserProfile returns the profile with stats by username.
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	username := c.Params("username")
	profile, err := s.userService.GetProfileByUsername(c.UserContext(), username)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.Respond(c, fiber.StatusOK, profile)
}

// GetUserByID returns the profile with stats by numeric ID.
func (s *Server) GetUserByID(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	profile, svcErr := s.userService.GetProfileByID(c.UserContext(), userID)
	if svcErr != nil {
		return models.RespondWithError(c, svcErr)
	}
	return models.Respond(c, fiber.StatusOK, profile)
}

// UpdateProfile partially updates the authenticated user's profile fields.
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.UserContext(), service.UpdateProfileInput{
		UserID:      currentUserID(c),
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		AvatarEmoji: req.AvatarEmoji,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondMessage(c, fiber.StatusOK, user, "Profile updated")
}
