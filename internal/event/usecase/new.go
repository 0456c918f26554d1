package usecase

import (
	"time"

	"github-activity-feed/internal/event/repository"
	"github-activity-feed/pkg/eventbus"
	"github-activity-feed/pkg/log"
)

// implUseCase is the private implementation of event.UseCase.
type implUseCase struct {
	repo          repository.Repository
	publisher     eventbus.Publisher
	subjectPrefix string
	clock         func() time.Time
	l             log.Logger
}

// New creates a new event UseCase implementation. A nil publisher disables publishing.
func New(repo repository.Repository, publisher eventbus.Publisher, subjectPrefix string, l log.Logger) *implUseCase {
	if publisher == nil {
		publisher = eventbus.NoopPublisher{}
	}
	return &implUseCase{
		repo:          repo,
		publisher:     publisher,
		subjectPrefix: subjectPrefix,
		clock:         time.Now,
		l:             l,
	}
}
