package webhook

import (
	"github-activity-feed/internal/event"
	pkgLog "github-activity-feed/pkg/log"
)

// maxPayloadBytes matches GitHub's 25 MB cap on webhook payloads.
const maxPayloadBytes = 25 << 20

type Handler struct {
	eventUC      event.UseCase
	deliveries   *deliveryCache
	githubParser *GitHubWebhookParser
	l            pkgLog.Logger
}

func NewHandler(
	eventUC event.UseCase,
	dedupConfig DedupConfig,
	l pkgLog.Logger,
) *Handler {
	var deliveries *deliveryCache
	if dedupConfig.Enabled {
		deliveries = newDeliveryCache(dedupConfig.Size, dedupConfig.TTL)
	}
	return &Handler{
		eventUC:      eventUC,
		deliveries:   deliveries,
		githubParser: NewGitHubParser(),
		l:            l,
	}
}
