package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/litreview/internal/api/dto"
	"github.com/spec-kit/litreview/internal/auth"
	"github.com/spec-kit/litreview/internal/domain"
	"github.com/spec-kit/litreview/internal/render"
	apperrors "github.com/spec-kit/litreview/pkg/util/errorutil"
)

// Presenter maps domain records to response DTOs for a given viewer.
type Presenter struct {
	renderer *render.Renderer
}

// NewPresenter constructs a presenter.
func NewPresenter(renderer *render.Renderer) *Presenter {
	return &Presenter{renderer: renderer}
}

func (p *Presenter) ticket(ticket *domain.Ticket, viewerID string) dto.TicketResponse {
	return dto.TicketResponse{
		ID:               ticket.ID,
		Title:            ticket.Title,
		Description:      ticket.Description,
		DescriptionHTML:  p.renderer.MustHTML(ticket.Description),
		ImageRef:         ticket.ImageRef,
		Author:           userResponse(ticket.Author),
		CreatedAt:        ticket.CreatedAt,
		ReviewedByViewer: ticket.ReviewedByViewer,
		CanEdit:          ticket.OwnedBy(viewerID),
	}
}

func (p *Presenter) review(review *domain.Review, viewerID string, withTicket bool) dto.ReviewResponse {
	resp := dto.ReviewResponse{
		ID:        review.ID,
		TicketID:  review.Ticket.ID,
		Rating:    review.Rating,
		Headline:  review.Headline,
		Body:      review.Body,
		BodyHTML:  p.renderer.MustHTML(review.Body),
		Author:    userResponse(review.Author),
		CreatedAt: review.CreatedAt,
		CanEdit:   review.OwnedBy(viewerID),
	}
	if withTicket {
		ticket := p.ticket(&review.Ticket, viewerID)
		resp.Ticket = &ticket
	}
	return resp
}

func (p *Presenter) ticketDetail(ticket *domain.Ticket, reviews []domain.Review, viewerID string) dto.TicketDetailResponse {
	items := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		items = append(items, p.review(&reviews[i], viewerID, false))
	}
	return dto.TicketDetailResponse{TicketResponse: p.ticket(ticket, viewerID), Reviews: items}
}

func (p *Presenter) feed(items []domain.FeedItem, viewerID string) []dto.FeedItemResponse {
	out := make([]dto.FeedItemResponse, 0, len(items))
	for _, item := range items {
		resp := dto.FeedItemResponse{Kind: string(item.Kind), CreatedAt: item.CreatedAt}
		switch item.Kind {
		case domain.FeedItemTicket:
			ticket := p.ticket(item.Ticket, viewerID)
			resp.Ticket = &ticket
		case domain.FeedItemReview:
			review := p.review(item.Review, viewerID, true)
			resp.Review = &review
		}
		out = append(out, resp)
	}
	return out
}

func userResponse(user domain.UserSummary) dto.UserResponse {
	return dto.UserResponse{ID: user.ID, Username: user.Username}
}

func userResponses(users []domain.UserSummary) []dto.UserResponse {
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userResponse(u))
	}
	return out
}

// currentUser returns the authenticated caller as a summary.
func currentUser(c *fiber.Ctx) (domain.UserSummary, error) {
	principal, err := auth.MustPrincipal(c)
	if err != nil {
		return domain.UserSummary{}, err
	}
	return principal.User.Summary(), nil
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	return nil
}

func ticketInput(req dto.TicketRequest) domain.TicketInput {
	return domain.TicketInput{Title: req.Title, Description: req.Description, ImageRef: req.ImageRef}
}

func reviewInput(req dto.ReviewRequest) domain.ReviewInput {
	return domain.ReviewInput{Rating: req.Rating, Headline: req.Headline, Body: req.Body}
}
