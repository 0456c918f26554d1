package usecase

import (
	"context"

	"github-activity-feed/internal/event"
	repo "github-activity-feed/internal/event/repository"
)

// List returns one page of events, newest first, with the unfiltered total.
func (uc *implUseCase) List(ctx context.Context, input event.ListEventsInput) (event.ListEventsOutput, error) {
	if input.Page < 1 {
		return event.ListEventsOutput{}, event.ErrInvalidPage
	}
	if input.Page > event.MaxPage {
		return event.ListEventsOutput{}, event.ErrPageOutOfRange
	}
	offset := (input.Page - 1) * event.PageSize

	total, err := uc.repo.CountEvents(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List CountEvents: %v", err)
		return event.ListEventsOutput{}, err
	}

	events, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{
		Limit:  event.PageSize,
		Offset: offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListEvents: %v", err)
		return event.ListEventsOutput{}, err
	}

	return event.ListEventsOutput{
		Events:      events,
		TotalCount:  total,
		CurrentPage: input.Page,
		HasNext:     offset+event.PageSize < total,
	}, nil
}
