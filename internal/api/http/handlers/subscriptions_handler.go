package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/litreview/internal/api/dto"
	"github.com/spec-kit/litreview/internal/domain"
	"github.com/spec-kit/litreview/internal/service"
)

// SubscriptionsHandler manages the follow graph of the current user.
type SubscriptionsHandler struct {
	follows *service.FollowService
}

// NewSubscriptionsHandler constructs handler.
func NewSubscriptionsHandler(followService *service.FollowService) *SubscriptionsHandler {
	return &SubscriptionsHandler{follows: followService}
}

// List GET /subscriptions.
func (h *SubscriptionsHandler) List(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	subs, err := h.follows.Subscriptions(c.UserContext(), user)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.SubscriptionsResponse{
		Following: userResponses(subs.Following),
		Followers: userResponses(subs.Followers),
	}})
}

// Follow POST /subscriptions.
func (h *SubscriptionsHandler) Follow(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.FollowRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	followed, err := h.follows.Follow(c.UserContext(), user, domain.FollowInput{Username: req.Username})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": userResponse(*followed)})
}

// Unfollow DELETE /subscriptions/:user_id.
func (h *SubscriptionsHandler) Unfollow(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.follows.Unfollow(c.UserContext(), user, c.Params("user_id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
