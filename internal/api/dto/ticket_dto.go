package dto

import "time"

// TicketRequest payload for creating or editing a ticket.
type TicketRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageRef    *string `json:"image_ref"`
}

// TicketResponse represents a ticket as seen by the current viewer.
type TicketResponse struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	DescriptionHTML  string       `json:"description_html"`
	ImageRef         *string      `json:"image_ref"`
	Author           UserResponse `json:"author"`
	CreatedAt        time.Time    `json:"created_at"`
	ReviewedByViewer bool         `json:"reviewed_by_viewer"`
	CanEdit          bool         `json:"can_edit"`
}

// TicketDetailResponse is a ticket together with its reviews.
type TicketDetailResponse struct {
	TicketResponse
	Reviews []ReviewResponse `json:"reviews"`
}
