package webhook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github-activity-feed/internal/model"
)

// GitHub event names carried in the X-GitHub-Event header.
const (
	EventPush        = "push"
	EventPullRequest = "pull_request"
)

// GitHubWebhookParser normalizes GitHub webhook payloads into event records.
// Every nested lookup is optional: an absent object or field becomes a nil attribute.
type GitHubWebhookParser struct{}

func NewGitHubParser() *GitHubWebhookParser {
	return &GitHubWebhookParser{}
}

type pushPayload struct {
	After  *string `json:"after"`
	Ref    *string `json:"ref"`
	Pusher *struct {
		Name *string `json:"name"`
	} `json:"pusher"`
}

type refObject struct {
	Ref *string `json:"ref"`
}

type pullRequestPayload struct {
	Action      *string `json:"action"`
	PullRequest *struct {
		ID   json.RawMessage `json:"id"`
		User *struct {
			Login *string `json:"login"`
		} `json:"user"`
		Head   *refObject `json:"head"`
		Base   *refObject `json:"base"`
		Merged *bool      `json:"merged"`
	} `json:"pull_request"`
}

// Normalize maps a GitHub event into an event record. ok is false for event
// types other than push and pull_request; those are never an error.
func (p *GitHubWebhookParser) Normalize(eventType string, payload []byte) (model.Event, bool, error) {
	var (
		e   *model.Event
		err error
	)
	switch eventType {
	case EventPush:
		e, err = p.ParsePushEvent(payload)
	case EventPullRequest:
		e, err = p.ParsePullRequestEvent(payload)
	default:
		return model.Event{}, false, nil
	}
	if err != nil {
		return model.Event{}, true, err
	}
	return *e, true, nil
}

// ParsePushEvent parses a GitHub push event.
func (p *GitHubWebhookParser) ParsePushEvent(payload []byte) (*model.Event, error) {
	var event pushPayload
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse push event: %w", err)
	}

	var author *string
	if event.Pusher != nil {
		author = event.Pusher.Name
	}

	return &model.Event{
		RequestID: event.After,
		Author:    author,
		Action:    model.ActionPush,
		ToBranch:  branchFromRef(event.Ref),
	}, nil
}

// ParsePullRequestEvent parses a GitHub pull_request event. A closed pull request
// with merged=true becomes MERGE; every other action stays PULL_REQUEST.
func (p *GitHubWebhookParser) ParsePullRequestEvent(payload []byte) (*model.Event, error) {
	var event pullRequestPayload
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to parse pull request event: %w", err)
	}

	out := &model.Event{Action: model.ActionPullRequest}

	pr := event.PullRequest
	if pr == nil {
		return out, nil
	}

	out.RequestID = scalarText(pr.ID)
	if pr.User != nil {
		out.Author = pr.User.Login
	}
	if pr.Head != nil {
		out.FromBranch = pr.Head.Ref
	}
	if pr.Base != nil {
		out.ToBranch = pr.Base.Ref
	}

	if event.Action != nil && *event.Action == "closed" && pr.Merged != nil && *pr.Merged {
		out.Action = model.ActionMerge
	}

	return out, nil
}

// scalarText renders a JSON scalar as text: strings unquoted, numbers verbatim so
// large ids stay exact. Absent and null values give nil.
func scalarText(raw json.RawMessage) *string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return model.StrPtr(s)
		}
	}
	return model.StrPtr(string(raw))
}

// branchFromRef keeps the last "/" segment (refs/heads/main → main).
func branchFromRef(ref *string) *string {
	if ref == nil {
		return nil
	}
	parts := strings.Split(*ref, "/")
	return model.StrPtr(parts[len(parts)-1])
}
