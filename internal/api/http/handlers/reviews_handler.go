package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/litreview/internal/api/dto"
	"github.com/spec-kit/litreview/internal/service"
)

// ReviewsHandler edits and removes reviews.
type ReviewsHandler struct {
	reviews   *service.ReviewService
	presenter *Presenter
}

// NewReviewsHandler constructs handler.
func NewReviewsHandler(reviewService *service.ReviewService, presenter *Presenter) *ReviewsHandler {
	return &ReviewsHandler{reviews: reviewService, presenter: presenter}
}

// UpdateReview PUT /reviews/:id.
func (h *ReviewsHandler) UpdateReview(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.ReviewRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	review, err := h.reviews.Update(c.UserContext(), user, c.Params("id"), reviewInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": h.presenter.review(review, user.ID, true)})
}

// DeleteReview DELETE /reviews/:id.
func (h *ReviewsHandler) DeleteReview(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.reviews.Delete(c.UserContext(), user, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
