package service

import (
	"context"

	"github.com/spec-kit/litreview/internal/domain"
	"github.com/spec-kit/litreview/internal/events"
	"github.com/spec-kit/litreview/internal/repository"
	"github.com/spec-kit/litreview/internal/validation"
	"github.com/spec-kit/litreview/pkg/util/errorutil"
)

const resourceTicket = "ticket"

// TicketService coordinates ticket workflows.
type TicketService struct {
	tickets    repository.TicketRepository
	reviews    repository.ReviewRepository
	dispatcher events.Dispatcher
}

// TicketDependencies bundles repositories for ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	ReviewRepo repository.ReviewRepository
	Dispatcher events.Dispatcher
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		reviews:    deps.ReviewRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Create stores a new ticket authored by actor.
func (s *TicketService) Create(ctx context.Context, actor domain.UserSummary, input domain.TicketInput) (*domain.Ticket, error) {
	input, err := validation.Ticket(input)
	if err != nil {
		return nil, err
	}

	ticket := newTicket(actor, input)
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	s.ticketCreated(ctx, ticket)
	return ticket, nil
}

// Get returns a ticket and its reviews, annotated for the viewer.
func (s *TicketService) Get(ctx context.Context, viewer domain.UserSummary, ticketID string) (*domain.Ticket, []domain.Review, error) {
	if err := checkID(ticketID, resourceTicket); err != nil {
		return nil, nil, err
	}
	ticket, err := s.tickets.GetByID(ctx, ticketID, viewer.ID)
	if err != nil {
		return nil, nil, notFoundOr(err, resourceTicket)
	}
	reviews, err := s.reviews.ListByTicket(ctx, ticket.ID, viewer.ID)
	if err != nil {
		return nil, nil, err
	}
	return ticket, reviews, nil
}

// Update edits a ticket the actor authored.
func (s *TicketService) Update(ctx context.Context, actor domain.UserSummary, ticketID string, input domain.TicketInput) (*domain.Ticket, error) {
	input, err := validation.Ticket(input)
	if err != nil {
		return nil, err
	}
	ticket, err := s.ownedTicket(ctx, actor, ticketID)
	if err != nil {
		return nil, err
	}

	ticket.Title = input.Title
	ticket.Description = input.Description
	ticket.ImageRef = input.ImageRef
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, notFoundOr(err, resourceTicket)
	}
	return ticket, nil
}

// Delete removes a ticket the actor authored, along with its reviews.
func (s *TicketService) Delete(ctx context.Context, actor domain.UserSummary, ticketID string) error {
	ticket, err := s.ownedTicket(ctx, actor, ticketID)
	if err != nil {
		return err
	}
	if err := s.tickets.Delete(ctx, ticket.ID); err != nil {
		return notFoundOr(err, resourceTicket)
	}
	publishEvent(ctx, s.dispatcher, events.Event{
		Type:    events.EventTicketDeleted,
		ActorID: actor.ID,
		Payload: events.TicketDeletedPayload{TicketID: ticket.ID},
	})
	return nil
}

// ownedTicket loads a ticket and checks authorship. Missing and foreign
// tickets are indistinguishable to the caller.
func (s *TicketService) ownedTicket(ctx context.Context, actor domain.UserSummary, ticketID string) (*domain.Ticket, error) {
	if err := checkID(ticketID, resourceTicket); err != nil {
		return nil, err
	}
	ticket, err := s.tickets.GetByID(ctx, ticketID, actor.ID)
	if err != nil {
		return nil, notFoundOr(err, resourceTicket)
	}
	if !ticket.OwnedBy(actor.ID) {
		return nil, errorutil.NewNotFound(resourceTicket)
	}
	return ticket, nil
}

func (s *TicketService) ticketCreated(ctx context.Context, ticket *domain.Ticket) {
	publishEvent(ctx, s.dispatcher, events.Event{
		Type:    events.EventTicketCreated,
		ActorID: ticket.Author.ID,
		Payload: events.TicketCreatedPayload{TicketID: ticket.ID, Title: ticket.Title},
	})
}

func newTicket(actor domain.UserSummary, input domain.TicketInput) *domain.Ticket {
	return &domain.Ticket{
		Title:       input.Title,
		Description: input.Description,
		ImageRef:    input.ImageRef,
		Author:      actor,
	}
}
