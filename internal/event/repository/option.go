package repository

import (
	"time"

	"github-activity-feed/internal/model"
)

// InsertEventOptions holds the fields of a new event record.
type InsertEventOptions struct {
	Timestamp  time.Time
	RequestID  *string
	Author     *string
	Action     model.Action
	FromBranch *string
	ToBranch   *string
}

// ListEventsOptions holds pagination parameters for listing events.
type ListEventsOptions struct {
	Limit  int
	Offset int
}
