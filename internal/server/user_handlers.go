package server

import (
	"tandem/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetRecommendedUsers handles GET /api/users. It returns onboarded users who
// are neither the caller nor already their friend.
func (s *Server) GetRecommendedUsers(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	users, err := s.userService.Recommend(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"recommendedUsers": users,
	})
}

// GetMyFriends handles GET /api/users/friends
func (s *Server) GetMyFriends(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	friends, err := s.userService.ListFriends(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"friends": models.Summaries(friends),
	})
}
