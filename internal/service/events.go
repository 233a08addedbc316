package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/litreview/internal/events"
	"github.com/spec-kit/litreview/pkg/util/errorutil"
)

// publishEvent fills in id and timestamp and hands the event to the dispatcher.
// Subscriber failures never fail the calling operation.
func publishEvent(ctx context.Context, dispatcher events.Dispatcher, event events.Event) {
	if dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = dispatcher.Publish(ctx, event)
}

// checkID rejects ids that cannot name a stored record. Such ids are reported
// as NOT_FOUND, same as a missing record.
func checkID(id, resource string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errorutil.NewNotFound(resource)
	}
	return nil
}

// notFoundOr collapses missing rows into NOT_FOUND and passes other errors through.
func notFoundOr(err error, resource string) error {
	if errorutil.IsNoRows(err) {
		return errorutil.NewNotFound(resource)
	}
	return err
}
