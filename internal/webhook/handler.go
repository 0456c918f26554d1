package webhook

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"github-activity-feed/internal/event"
	"github-activity-feed/internal/model"
	pkgResponse "github-activity-feed/pkg/response"
)

// HandleGitHubWebhook godoc
// @Summary     Receive a GitHub webhook
// @Description Normalizes push and pull_request events into an event record and stores it. Other event types are acknowledged and ignored.
// @Tags        Webhook
// @Accept      json
// @Produce     json
// @Param       X-GitHub-Event    header string true  "GitHub event type"
// @Param       X-GitHub-Delivery header string false "GitHub delivery id"
// @Success     200 {object} pkgResponse.MsgResp   "stored, ignored, or duplicate delivery"
// @Failure     400 {object} pkgResponse.ErrorResp "No payload received"
// @Failure     500 {object} pkgResponse.ErrorResp "Internal Server Error"
// @Router      /webhook [POST]
func (h *Handler) HandleGitHubWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	// Read body
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxPayloadBytes))
	if err != nil {
		h.l.Errorf(ctx, "Failed to read webhook body: %v", err)
		pkgResponse.Error(c, ErrNoPayload)
		return
	}

	if err := checkPayload(body); err != nil {
		h.l.Warnf(ctx, "Rejected webhook payload: %v", err)
		pkgResponse.Error(c, err)
		return
	}

	// Get event type
	eventType := c.GetHeader("X-GitHub-Event")
	e, ok, err := h.githubParser.Normalize(eventType, body)
	if !ok {
		h.l.Infof(ctx, "Ignored GitHub event type: %q", eventType)
		pkgResponse.Message(c, fmt.Sprintf("Event type %s ignored", displayEventType(eventType)))
		return
	}
	if err != nil {
		h.l.Warnf(ctx, "Failed to parse GitHub event: %v", err)
		pkgResponse.Error(c, err)
		return
	}

	deliveryID := c.GetHeader("X-GitHub-Delivery")
	if !h.deliveries.Reserve(deliveryID) {
		h.l.Infof(ctx, "Duplicate GitHub delivery %s skipped", deliveryID)
		pkgResponse.Message(c, fmt.Sprintf("Delivery %s already stored", deliveryID))
		return
	}

	output, err := h.eventUC.Create(ctx, event.CreateEventInput{Event: e})
	if err != nil {
		h.l.Errorf(ctx, "eventUC.Create: %v", err)
		h.deliveries.Release(deliveryID)
		pkgResponse.InternalError(c, err)
		return
	}

	h.l.Infof(ctx, "Stored %s event %s by %s", output.Event.Action, output.Event.ID, model.StrVal(output.Event.Author))
	pkgResponse.Message(c, "stored")
}

// displayEventType echoes the header value; an absent header is shown as None.
func displayEventType(eventType string) string {
	if eventType == "" {
		return "None"
	}
	return eventType
}
