package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/litreview/internal/api/dto"
	"github.com/spec-kit/litreview/internal/service"
)

// TicketsHandler manages ticket endpoints and the reviews nested under them.
type TicketsHandler struct {
	tickets   *service.TicketService
	reviews   *service.ReviewService
	presenter *Presenter
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService, reviewService *service.ReviewService, presenter *Presenter) *TicketsHandler {
	return &TicketsHandler{tickets: ticketService, reviews: reviewService, presenter: presenter}
}

// CreateTicket POST /tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.TicketRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	ticket, err := h.tickets.Create(c.UserContext(), user, ticketInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": h.presenter.ticket(ticket, user.ID)})
}

// CreateTicketWithReview POST /tickets/with-review.
func (h *TicketsHandler) CreateTicketWithReview(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.TicketWithReviewRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	review, err := h.reviews.CreateWithTicket(c.UserContext(), user, ticketInput(req.Ticket), reviewInput(req.Review))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": h.presenter.review(review, user.ID, true)})
}

// GetTicket GET /tickets/:id.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	ticket, reviews, err := h.tickets.Get(c.UserContext(), user, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": h.presenter.ticketDetail(ticket, reviews, user.ID)})
}

// UpdateTicket PUT /tickets/:id.
func (h *TicketsHandler) UpdateTicket(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.TicketRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	ticket, err := h.tickets.Update(c.UserContext(), user, c.Params("id"), ticketInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": h.presenter.ticket(ticket, user.ID)})
}

// DeleteTicket DELETE /tickets/:id.
func (h *TicketsHandler) DeleteTicket(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.tickets.Delete(c.UserContext(), user, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// AddReview POST /tickets/:id/reviews.
func (h *TicketsHandler) AddReview(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.ReviewRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	review, err := h.reviews.Create(c.UserContext(), user, c.Params("id"), reviewInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": h.presenter.review(review, user.ID, true)})
}
