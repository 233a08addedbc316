package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/litreview/internal/service"
)

// FeedHandler serves the merged timelines.
type FeedHandler struct {
	feed      *service.FeedService
	presenter *Presenter
}

// NewFeedHandler constructs handler.
func NewFeedHandler(feedService *service.FeedService, presenter *Presenter) *FeedHandler {
	return &FeedHandler{feed: feedService, presenter: presenter}
}

// Feed GET /feed.
func (h *FeedHandler) Feed(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	items, err := h.feed.Feed(c.UserContext(), user)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": h.presenter.feed(items, user.ID)})
}

// Posts GET /posts.
func (h *FeedHandler) Posts(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	items, err := h.feed.Posts(c.UserContext(), user)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": h.presenter.feed(items, user.ID)})
}
