package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/litreview/internal/events"
	"github.com/spec-kit/litreview/internal/testutil"
	"github.com/spec-kit/litreview/pkg/util/errorutil"
)

type recordedEvents struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recordedEvents) types() []events.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func recordingDispatcher() (events.Dispatcher, *recordedEvents) {
	d := events.NewInMemoryDispatcher()
	rec := &recordedEvents{}
	record := func(_ context.Context, e events.Event) error {
		rec.mu.Lock()
		defer rec.mu.Unlock()
		rec.events = append(rec.events, e)
		return nil
	}
	for _, t := range []events.EventType{
		events.EventTicketCreated,
		events.EventTicketDeleted,
		events.EventReviewCreated,
		events.EventUserFollowed,
	} {
		d.Subscribe(t, record)
	}
	return d, rec
}

type fixture struct {
	store   *testutil.Store
	events  *recordedEvents
	tickets *TicketService
	reviews *ReviewService
	follows *FollowService
	feed    *FeedService
}

func newFixture() *fixture {
	store := testutil.NewStore()
	dispatcher, rec := recordingDispatcher()
	return &fixture{
		store:  store,
		events: rec,
		tickets: NewTicketService(TicketDependencies{
			TicketRepo: store.Tickets(),
			ReviewRepo: store.Reviews(),
			Dispatcher: dispatcher,
		}),
		reviews: NewReviewService(ReviewDependencies{
			TicketRepo: store.Tickets(),
			ReviewRepo: store.Reviews(),
			Transactor: store.Transactor(),
			Dispatcher: dispatcher,
		}),
		follows: NewFollowService(FollowDependencies{
			UserRepo:   store.Users(),
			FollowRepo: store.Follows(),
			Dispatcher: dispatcher,
		}),
		feed: NewFeedService(store.Feed()),
	}
}

func intPtr(v int) *int { return &v }

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	require.True(t, errorutil.HasCode(err, code), "expected %s, got %v", code, err)
}
