package domain

import (
	"sort"
	"time"
)

// FeedItemKind distinguishes the two record types a feed can hold.
type FeedItemKind string

const (
	FeedItemTicket FeedItemKind = "TICKET"
	FeedItemReview FeedItemKind = "REVIEW"
)

// FeedItem is one entry of a feed; exactly one of Ticket or Review is set.
type FeedItem struct {
	Kind      FeedItemKind
	CreatedAt time.Time
	Ticket    *Ticket
	Review    *Review
}

// MergeFeed combines tickets and reviews into a single newest-first sequence.
// Items with equal timestamps keep their input order, tickets first.
func MergeFeed(tickets []Ticket, reviews []Review) []FeedItem {
	items := make([]FeedItem, 0, len(tickets)+len(reviews))
	for i := range tickets {
		items = append(items, FeedItem{Kind: FeedItemTicket, CreatedAt: tickets[i].CreatedAt, Ticket: &tickets[i]})
	}
	for i := range reviews {
		items = append(items, FeedItem{Kind: FeedItemReview, CreatedAt: reviews[i].CreatedAt, Review: &reviews[i]})
	}
	sort.SliceStable(items, func(a, b int) bool {
		return items[a].CreatedAt.After(items[b].CreatedAt)
	})
	return items
}
