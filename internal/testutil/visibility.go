package testutil

import "github.com/spec-kit/litreview/internal/domain"

// visibility mirrors the feed repository's SQL for records held in memory.
type visibility struct {
	viewerID  string
	following map[string]struct{}
}

func newVisibility(viewerID string, following []string) visibility {
	set := make(map[string]struct{}, len(following))
	for _, id := range following {
		set[id] = struct{}{}
	}
	return visibility{viewerID: viewerID, following: set}
}

func (v visibility) authorVisible(authorID string) bool {
	if authorID == v.viewerID {
		return true
	}
	_, ok := v.following[authorID]
	return ok
}

// TicketVisible admits tickets authored by the viewer or someone they follow.
func (v visibility) TicketVisible(t domain.Ticket) bool {
	return v.authorVisible(t.Author.ID)
}

// ReviewVisible additionally admits reviews left on the viewer's own tickets.
func (v visibility) ReviewVisible(r domain.Review) bool {
	return v.authorVisible(r.Author.ID) || r.Ticket.Author.ID == v.viewerID
}
