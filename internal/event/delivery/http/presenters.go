package http

import (
	"github-activity-feed/internal/event"
	"github-activity-feed/internal/model"
	"github-activity-feed/pkg/response"
)

// --- Request DTOs ---

type listReq struct {
	Page int
}

func (r listReq) validate() error {
	if r.Page < 1 {
		return event.ErrInvalidPage
	}
	if r.Page > event.MaxPage {
		return event.ErrPageOutOfRange
	}
	return nil
}

func (r listReq) toInput() event.ListEventsInput {
	return event.ListEventsInput{Page: r.Page}
}

// --- Response DTOs ---

type eventResp struct {
	ID         string               `json:"_id"`
	Timestamp  response.DisplayTime `json:"timestamp" swaggertype:"string" example:"22 Feb 2026 • 12:45 AM"`
	RequestID  *string              `json:"request_id"`
	Author     *string              `json:"author"`
	Action     string               `json:"action" example:"PUSH"`
	FromBranch *string              `json:"from_branch"`
	ToBranch   *string              `json:"to_branch"`
}

func newEventResp(e model.Event) eventResp {
	return eventResp{
		ID:         e.ID,
		Timestamp:  response.DisplayTime(e.Timestamp),
		RequestID:  e.RequestID,
		Author:     e.Author,
		Action:     string(e.Action),
		FromBranch: e.FromBranch,
		ToBranch:   e.ToBranch,
	}
}

type listResp struct {
	Events      []eventResp `json:"events"`
	TotalCount  int         `json:"total_count"`
	CurrentPage int         `json:"current_page"`
	HasNext     bool        `json:"has_next"`
}

func (h *handler) newListResp(out event.ListEventsOutput) listResp {
	events := make([]eventResp, len(out.Events))
	for i, e := range out.Events {
		events[i] = newEventResp(e)
	}
	return listResp{
		Events:      events,
		TotalCount:  out.TotalCount,
		CurrentPage: out.CurrentPage,
		HasNext:     out.HasNext,
	}
}
