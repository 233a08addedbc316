package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeFeed_NewestFirst(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tickets := []Ticket{
		{ID: "t1", CreatedAt: base},
		{ID: "t2", CreatedAt: base.Add(2 * time.Hour)},
	}
	reviews := []Review{
		{ID: "r1", CreatedAt: base.Add(time.Hour)},
		{ID: "r2", CreatedAt: base.Add(3 * time.Hour)},
	}

	items := MergeFeed(tickets, reviews)
	require.Len(t, items, 4)

	ids := make([]string, 0, len(items))
	for _, item := range items {
		switch item.Kind {
		case FeedItemTicket:
			ids = append(ids, item.Ticket.ID)
		case FeedItemReview:
			ids = append(ids, item.Review.ID)
		}
	}
	assert.Equal(t, []string{"r2", "t2", "r1", "t1"}, ids)

	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].CreatedAt.After(items[i-1].CreatedAt))
	}
}

func TestMergeFeed_TiesKeepTicketsFirst(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	items := MergeFeed([]Ticket{{ID: "t1", CreatedAt: at}}, []Review{{ID: "r1", CreatedAt: at}})

	require.Len(t, items, 2)
	assert.Equal(t, FeedItemTicket, items[0].Kind)
	assert.Equal(t, FeedItemReview, items[1].Kind)
}

func TestMergeFeed_Empty(t *testing.T) {
	assert.Empty(t, MergeFeed(nil, nil))
}

func TestOwnedBy(t *testing.T) {
	ticket := &Ticket{Author: UserSummary{ID: "alice"}}
	assert.True(t, ticket.OwnedBy("alice"))
	assert.False(t, ticket.OwnedBy("bob"))

	var missing *Review
	assert.False(t, missing.OwnedBy("alice"))
}
