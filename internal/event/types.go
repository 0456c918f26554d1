package event

import (
	"math"

	"github-activity-feed/internal/model"
)

// PageSize is the fixed number of events per page.
const PageSize = 6

// MaxPage is the largest page whose offset and end still fit in an int.
const MaxPage = (math.MaxInt-PageSize)/PageSize + 1

// --- UseCase Inputs ---

type CreateEventInput struct {
	Event model.Event
}

type ListEventsInput struct {
	Page int // 1-based
}

// --- UseCase Outputs ---

type CreateEventOutput struct {
	Event model.Event
}

type ListEventsOutput struct {
	Events      []model.Event
	TotalCount  int
	CurrentPage int
	HasNext     bool
}
