package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/litreview/internal/events"
)

// NotificationService turns domain events into per-user notifications.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketCreated, n.handleTicketCreated)
	n.dispatcher.Subscribe(events.EventTicketDeleted, n.handleTicketDeleted)
	n.dispatcher.Subscribe(events.EventReviewCreated, n.handleReviewCreated)
	n.dispatcher.Subscribe(events.EventUserFollowed, n.handleUserFollowed)
}

func (n *NotificationService) handleTicketCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("TicketCreated", zap.String("actor_id", event.ActorID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleTicketDeleted(ctx context.Context, event events.Event) error {
	n.logger.Info("TicketDeleted", zap.String("actor_id", event.ActorID), zap.Any("payload", event.Payload))
	return nil
}

// handleReviewCreated tells a ticket's author that someone else answered it.
func (n *NotificationService) handleReviewCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("ReviewCreated", zap.String("actor_id", event.ActorID), zap.Any("payload", event.Payload))
	payload, ok := event.Payload.(events.ReviewCreatedPayload)
	if !ok || payload.TicketAuthorID == event.ActorID {
		return nil
	}
	n.notify(ctx, event, payload.TicketAuthorID)
	return nil
}

func (n *NotificationService) handleUserFollowed(ctx context.Context, event events.Event) error {
	n.logger.Info("UserFollowed", zap.String("actor_id", event.ActorID), zap.Any("payload", event.Payload))
	if payload, ok := event.Payload.(events.UserFollowedPayload); ok {
		n.notify(ctx, event, payload.FollowedID)
	}
	return nil
}

// notify records a notification for recipientID. Delivery is log-only for now.
func (n *NotificationService) notify(_ context.Context, event events.Event, recipientID string) {
	n.logger.Debug("notification",
		zap.String("recipient_id", recipientID),
		zap.String("actor_id", event.ActorID),
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)))
}
