package usecase

import (
	"context"

	"github-activity-feed/internal/event"
	repo "github-activity-feed/internal/event/repository"
)

// Create stamps the event with the current UTC time and persists it with one insert.
// Publishing afterwards is best effort.
func (uc *implUseCase) Create(ctx context.Context, input event.CreateEventInput) (event.CreateEventOutput, error) {
	e := input.Event
	if !e.Action.IsValid() {
		return event.CreateEventOutput{}, event.ErrInvalidAction
	}

	stored, err := uc.repo.InsertEvent(ctx, repo.InsertEventOptions{
		Timestamp:  uc.clock().UTC(),
		RequestID:  e.RequestID,
		Author:     e.Author,
		Action:     e.Action,
		FromBranch: e.FromBranch,
		ToBranch:   e.ToBranch,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create InsertEvent: %v", err)
		return event.CreateEventOutput{}, err
	}

	uc.publish(ctx, stored)

	return event.CreateEventOutput{Event: stored}, nil
}
