package domain

import "time"

const (
	HeadlineMaxLen = 128
	BodyMaxLen     = 8192
	RatingMin      = 0
	RatingMax      = 5
)

// Review is a rating plus commentary attached to exactly one ticket.
// A given author reviews a given ticket at most once.
type Review struct {
	ID        string
	Ticket    Ticket
	Rating    int
	Headline  string
	Body      string
	Author    UserSummary
	CreatedAt time.Time
}

// OwnedBy reports whether userID authored the review.
func (r *Review) OwnedBy(userID string) bool {
	return r != nil && r.Author.ID == userID
}

// ReviewInput is the typed payload for creating or editing a review.
type ReviewInput struct {
	Rating   *int   `json:"rating" validate:"required,gte=0,lte=5"`
	Headline string `json:"headline" validate:"required,max=128"`
	Body     string `json:"body" validate:"max=8192"`
}
