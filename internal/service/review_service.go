package service

import (
	"context"
	"errors"

	"github.com/spec-kit/litreview/internal/domain"
	"github.com/spec-kit/litreview/internal/events"
	"github.com/spec-kit/litreview/internal/repository"
	"github.com/spec-kit/litreview/internal/validation"
	"github.com/spec-kit/litreview/pkg/util/errorutil"
)

const resourceReview = "review"

// ReviewService coordinates review workflows, including the combined
// ticket-and-review submission.
type ReviewService struct {
	tickets    repository.TicketRepository
	reviews    repository.ReviewRepository
	tx         repository.Transactor
	dispatcher events.Dispatcher
}

// ReviewDependencies bundles repositories for review service.
type ReviewDependencies struct {
	TicketRepo repository.TicketRepository
	ReviewRepo repository.ReviewRepository
	Transactor repository.Transactor
	Dispatcher events.Dispatcher
}

// NewReviewService constructs the service.
func NewReviewService(deps ReviewDependencies) *ReviewService {
	return &ReviewService{
		tickets:    deps.TicketRepo,
		reviews:    deps.ReviewRepo,
		tx:         deps.Transactor,
		dispatcher: deps.Dispatcher,
	}
}

// Create reviews an existing ticket. Any user may review any ticket they can
// address, but only once.
func (s *ReviewService) Create(ctx context.Context, actor domain.UserSummary, ticketID string, input domain.ReviewInput) (*domain.Review, error) {
	input, err := validation.Review(input)
	if err != nil {
		return nil, err
	}
	if err := checkID(ticketID, resourceTicket); err != nil {
		return nil, err
	}

	ticket, err := s.tickets.GetByID(ctx, ticketID, actor.ID)
	if err != nil {
		return nil, notFoundOr(err, resourceTicket)
	}
	exists, err := s.reviews.ExistsForTicketAndAuthor(ctx, ticket.ID, actor.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errorutil.NewDuplicateReview(nil)
	}

	review := newReview(actor, *ticket, input)
	if err := s.insert(ctx, review); err != nil {
		return nil, err
	}
	s.reviewCreated(ctx, review)
	return review, nil
}

// CreateWithTicket stores a new ticket and the actor's review of it as one
// unit. Either both records exist afterwards or neither does.
func (s *ReviewService) CreateWithTicket(ctx context.Context, actor domain.UserSummary, ticketInput domain.TicketInput, reviewInput domain.ReviewInput) (*domain.Review, error) {
	ticketInput, ticketErr := validation.Ticket(ticketInput)
	reviewInput, reviewErr := validation.Review(reviewInput)
	if err := validation.Merge(ticketErr, reviewErr); err != nil {
		return nil, err
	}

	var review *domain.Review
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		ticket := newTicket(actor, ticketInput)
		if err := s.tickets.Create(ctx, ticket); err != nil {
			return err
		}
		review = newReview(actor, *ticket, reviewInput)
		return s.insert(ctx, review)
	})
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.dispatcher, events.Event{
		Type:    events.EventTicketCreated,
		ActorID: actor.ID,
		Payload: events.TicketCreatedPayload{TicketID: review.Ticket.ID, Title: review.Ticket.Title},
	})
	s.reviewCreated(ctx, review)
	return review, nil
}

// Update edits a review the actor authored.
func (s *ReviewService) Update(ctx context.Context, actor domain.UserSummary, reviewID string, input domain.ReviewInput) (*domain.Review, error) {
	input, err := validation.Review(input)
	if err != nil {
		return nil, err
	}
	review, err := s.ownedReview(ctx, actor, reviewID)
	if err != nil {
		return nil, err
	}

	review.Rating = *input.Rating
	review.Headline = input.Headline
	review.Body = input.Body
	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, notFoundOr(err, resourceReview)
	}
	return review, nil
}

// Delete removes a review the actor authored. The ticket stays.
func (s *ReviewService) Delete(ctx context.Context, actor domain.UserSummary, reviewID string) error {
	review, err := s.ownedReview(ctx, actor, reviewID)
	if err != nil {
		return err
	}
	return notFoundOr(s.reviews.Delete(ctx, review.ID), resourceReview)
}

func (s *ReviewService) ownedReview(ctx context.Context, actor domain.UserSummary, reviewID string) (*domain.Review, error) {
	if err := checkID(reviewID, resourceReview); err != nil {
		return nil, err
	}
	review, err := s.reviews.GetByID(ctx, reviewID, actor.ID)
	if err != nil {
		return nil, notFoundOr(err, resourceReview)
	}
	if !review.OwnedBy(actor.ID) {
		return nil, errorutil.NewNotFound(resourceReview)
	}
	return review, nil
}

// insert stores the review. A racing duplicate or a ticket deleted after the
// pre-checks surfaces from the constraints and is reported the same way.
func (s *ReviewService) insert(ctx context.Context, review *domain.Review) error {
	if err := s.reviews.Create(ctx, review); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return errorutil.NewDuplicateReview(err)
		case errors.Is(err, repository.ErrReferenceMissing):
			return errorutil.NewNotFound(resourceTicket)
		}
		return err
	}
	review.Ticket.ReviewedByViewer = true
	return nil
}

func (s *ReviewService) reviewCreated(ctx context.Context, review *domain.Review) {
	publishEvent(ctx, s.dispatcher, events.Event{
		Type:    events.EventReviewCreated,
		ActorID: review.Author.ID,
		Payload: events.ReviewCreatedPayload{
			ReviewID:       review.ID,
			TicketID:       review.Ticket.ID,
			TicketAuthorID: review.Ticket.Author.ID,
			Rating:         review.Rating,
			Headline:       review.Headline,
		},
	})
}

func newReview(actor domain.UserSummary, ticket domain.Ticket, input domain.ReviewInput) *domain.Review {
	return &domain.Review{
		Ticket:   ticket,
		Rating:   *input.Rating,
		Headline: input.Headline,
		Body:     input.Body,
		Author:   actor,
	}
}
