package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated EventType = "ticket_created"
	EventTicketDeleted EventType = "ticket_deleted"
	EventReviewCreated EventType = "review_created"
	EventUserFollowed  EventType = "user_followed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	TicketID string `json:"ticket_id"`
	Title    string `json:"title"`
}

// TicketDeletedPayload payload.
type TicketDeletedPayload struct {
	TicketID string `json:"ticket_id"`
}

// ReviewCreatedPayload payload.
type ReviewCreatedPayload struct {
	ReviewID       string `json:"review_id"`
	TicketID       string `json:"ticket_id"`
	TicketAuthorID string `json:"ticket_author_id"`
	Rating         int    `json:"rating"`
	Headline       string `json:"headline"`
}

// UserFollowedPayload payload.
type UserFollowedPayload struct {
	FollowedID       string `json:"followed_id"`
	FollowedUsername string `json:"followed_username"`
}
