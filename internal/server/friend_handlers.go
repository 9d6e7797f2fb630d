package server

import (
	"strconv"

	"tandem/internal/models"

	"github.com/gofiber/fiber/v2"
)

// parseIDParam parses the named route parameter as a user-facing ID.
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewValidationError("Invalid ID parameter")
	}
	return uint(id), nil
}

// SendFriendRequest handles POST /api/users/friend-request/:id where :id is
// the recipient's user ID.
func (s *Server) SendFriendRequest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	recipientID, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}

	request, err := s.friendService.SendFriendRequest(c.Context(), userID, recipientID)
	if err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":       true,
		"friendRequest": request,
	})
}

// AcceptFriendRequest handles PUT /api/users/friend-request/:id/accept where
// :id is the friend request ID.
func (s *Server) AcceptFriendRequest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	requestID, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}

	request, err := s.friendService.AcceptFriendRequest(c.Context(), userID, requestID)
	if err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"message":       "Friend request accepted",
		"friendRequest": request,
	})
}

// GetFriendRequests handles GET /api/users/friend-requests. It returns both
// pending requests addressed to the caller and the caller's sent requests
// that were accepted (surfaced as "your request was accepted" notifications).
func (s *Server) GetFriendRequests(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	incoming, err := s.friendService.GetIncomingRequests(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}

	accepted, err := s.friendService.GetAcceptedSentRequests(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"incomingRequests": incoming,
		"acceptedRequests": accepted,
	})
}

// GetOutgoingFriendRequests handles GET /api/users/outgoing-friend-requests
func (s *Server) GetOutgoingFriendRequests(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	outgoing, err := s.friendService.GetOutgoingRequests(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"outgoingRequests": outgoing,
	})
}
