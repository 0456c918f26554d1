package repository

import (
	"context"

	"github-activity-feed/internal/model"
)

// Repository is the composed interface for the event data store.
type Repository interface {
	EventRepository
}

// EventRepository is append-only: events are never updated or deleted.
type EventRepository interface {
	// InsertEvent stores opt and returns the record with its storage id.
	InsertEvent(ctx context.Context, opt InsertEventOptions) (model.Event, error)
	// CountEvents returns the number of stored events.
	CountEvents(ctx context.Context) (int, error)
	// ListEvents returns events ordered by timestamp, newest first.
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.Event, error)
}
