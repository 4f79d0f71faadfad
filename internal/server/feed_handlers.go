package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetFeed returns the personalized timeline: posts by the authenticated
// user and everyone they follow, newest first.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	p := parsePagination(c)
	posts, total, err := s.feedService.GetFeed(c.UserContext(), currentUserID(c), p.Limit, p.Offset())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondPage(c, posts, models.NewPagination(p.Page, p.Limit, total))
}
