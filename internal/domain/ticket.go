package domain

import "time"

// Field limits shared by validation and the database schema.
const (
	TitleMaxLen       = 128
	DescriptionMaxLen = 2048
	ImageRefMaxLen    = 255
)

// Ticket is a request for a review of some item.
type Ticket struct {
	ID          string
	Title       string
	Description string
	ImageRef    *string
	Author      UserSummary
	CreatedAt   time.Time

	// ReviewedByViewer is set by read paths that know who is looking.
	ReviewedByViewer bool
}

// OwnedBy reports whether userID authored the ticket.
func (t *Ticket) OwnedBy(userID string) bool {
	return t != nil && t.Author.ID == userID
}

// TicketInput is the typed payload for creating or editing a ticket.
type TicketInput struct {
	Title       string  `json:"title" validate:"required,max=128"`
	Description string  `json:"description" validate:"max=2048"`
	ImageRef    *string `json:"image_ref" validate:"omitempty,max=255"`
}
