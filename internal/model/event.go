package model

import "time"

// Action is the normalized tag of a stored event.
type Action string

const (
	ActionPush        Action = "PUSH"
	ActionPullRequest Action = "PULL_REQUEST"
	ActionMerge       Action = "MERGE"
)

// IsValid reports whether a is one of the fixed tags.
func (a Action) IsValid() bool {
	switch a {
	case ActionPush, ActionPullRequest, ActionMerge:
		return true
	}
	return false
}

// Event is the normalized record of one push or pull request notification.
// Nil pointers are stored and rendered as null.
type Event struct {
	ID         string    // Assigned by storage
	Timestamp  time.Time // Server-assigned at ingress, UTC
	RequestID  *string   // Commit hash for pushes, PR id for pull requests
	Author     *string   // Pusher name or PR author login
	Action     Action
	FromBranch *string // Only set for PULL_REQUEST and MERGE
	ToBranch   *string // Pushed branch or PR base branch
}

// StrPtr returns a pointer to s.
func StrPtr(s string) *string {
	return &s
}

// StrVal dereferences p, returning "" for nil.
func StrVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
