package dto

import "time"

// ReviewRequest payload for creating or editing a review. Rating is a pointer
// so that a missing rating can be told apart from a zero rating.
type ReviewRequest struct {
	Rating   *int   `json:"rating"`
	Headline string `json:"headline"`
	Body     string `json:"body"`
}

// TicketWithReviewRequest submits a new ticket and its first review together.
type TicketWithReviewRequest struct {
	Ticket TicketRequest `json:"ticket"`
	Review ReviewRequest `json:"review"`
}

// ReviewResponse represents a review. Ticket is omitted when the review is
// nested under its ticket.
type ReviewResponse struct {
	ID        string          `json:"id"`
	TicketID  string          `json:"ticket_id"`
	Ticket    *TicketResponse `json:"ticket,omitempty"`
	Rating    int             `json:"rating"`
	Headline  string          `json:"headline"`
	Body      string          `json:"body"`
	BodyHTML  string          `json:"body_html"`
	Author    UserResponse    `json:"author"`
	CreatedAt time.Time       `json:"created_at"`
	CanEdit   bool            `json:"can_edit"`
}

// FeedItemResponse is one entry of the merged timeline.
type FeedItemResponse struct {
	Kind      string          `json:"kind"`
	CreatedAt time.Time       `json:"created_at"`
	Ticket    *TicketResponse `json:"ticket,omitempty"`
	Review    *ReviewResponse `json:"review,omitempty"`
}
