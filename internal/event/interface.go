package event

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Create stamps the event with the current UTC time and stores it.
	Create(ctx context.Context, input CreateEventInput) (CreateEventOutput, error)
	// List returns one page of stored events, newest first.
	List(ctx context.Context, input ListEventsInput) (ListEventsOutput, error)
}
