package usecase

import (
	"context"
	"strings"
	"time"

	"github-activity-feed/internal/model"
)

// publishedEvent is the wire shape sent on the event bus.
type publishedEvent struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	RequestID  *string   `json:"request_id"`
	Author     *string   `json:"author"`
	Action     string    `json:"action"`
	FromBranch *string   `json:"from_branch"`
	ToBranch   *string   `json:"to_branch"`
}

// subject returns e.g. "github.events.pull_request".
func (uc *implUseCase) subject(a model.Action) string {
	return uc.subjectPrefix + "." + strings.ToLower(string(a))
}

func (uc *implUseCase) publish(ctx context.Context, e model.Event) {
	msg := publishedEvent{
		ID:         e.ID,
		Timestamp:  e.Timestamp,
		RequestID:  e.RequestID,
		Author:     e.Author,
		Action:     string(e.Action),
		FromBranch: e.FromBranch,
		ToBranch:   e.ToBranch,
	}
	if err := uc.publisher.Publish(ctx, uc.subject(e.Action), msg); err != nil {
		uc.l.Warnf(ctx, "uc.Create Publish %s: %v", e.ID, err)
	}
}
