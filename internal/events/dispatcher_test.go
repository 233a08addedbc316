package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryDispatcher_Publish(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []string
	d.Subscribe(EventTicketCreated, func(_ context.Context, e Event) error {
		got = append(got, "first:"+e.ID)
		return errors.New("first failed")
	})
	d.Subscribe(EventTicketCreated, func(_ context.Context, e Event) error {
		got = append(got, "second:"+e.ID)
		return nil
	})
	d.Subscribe(EventReviewCreated, func(_ context.Context, e Event) error {
		got = append(got, "review:"+e.ID)
		return nil
	})

	err := d.Publish(context.Background(), Event{ID: "e1", Type: EventTicketCreated})

	assert.EqualError(t, err, "first failed")
	assert.Equal(t, []string{"first:e1", "second:e1"}, got)
}

func TestInMemoryDispatcher_NoListeners(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventUserFollowed}))
}
