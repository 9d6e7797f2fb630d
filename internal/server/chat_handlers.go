package server

import (
	"strconv"

	"tandem/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// GetStreamToken handles GET /api/chat/token. It issues a token for the
// external messaging provider, signed with the provider's API secret. The
// provider expects a user_id claim identifying the chat user.
func (s *Server) GetStreamToken(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	if s.config.StreamAPISecret == "" {
		return models.RespondWithError(c, fiber.StatusServiceUnavailable,
			models.NewInvalidOperationError("Chat provider is not configured"))
	}

	claims := jwt.MapClaims{
		"user_id": strconv.FormatUint(uint64(userID), 10),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.StreamAPISecret))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   signed,
	})
}
