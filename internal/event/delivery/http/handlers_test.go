package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	nethttp "net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github-activity-feed/internal/event"
	eventHTTP "github-activity-feed/internal/event/delivery/http"
	"github-activity-feed/internal/model"
	"github-activity-feed/pkg/log"
)

type mockEventUseCase struct {
	lastInput event.ListEventsInput
	calls     int
	output    event.ListEventsOutput
	err       error
}

func (m *mockEventUseCase) Create(ctx context.Context, input event.CreateEventInput) (event.CreateEventOutput, error) {
	return event.CreateEventOutput{}, nil
}

func (m *mockEventUseCase) List(ctx context.Context, input event.ListEventsInput) (event.ListEventsOutput, error) {
	m.calls++
	m.lastInput = input
	return m.output, m.err
}

func get(uc event.UseCase, target string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	eventHTTP.RegisterRoutes(r, eventHTTP.New(log.NewNop(), uc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(nethttp.MethodGet, target, nil))
	return w
}

func TestList(t *testing.T) {
	ts := time.Date(2026, 2, 22, 0, 45, 0, 0, time.UTC)

	t.Run("formats events and metadata", func(t *testing.T) {
		uc := &mockEventUseCase{output: event.ListEventsOutput{
			Events: []model.Event{
				{
					ID:         "5f1c2f0e-9d1a-4c0b-8e7e-2f1b3c4d5e6f",
					Timestamp:  ts,
					RequestID:  model.StrPtr("42"),
					Author:     model.StrPtr("bob"),
					Action:     model.ActionMerge,
					FromBranch: model.StrPtr("feature"),
					ToBranch:   model.StrPtr("main"),
				},
				{
					ID:        "1a2b3c4d-0000-4000-8000-000000000001",
					Timestamp: ts.Add(-13 * time.Hour),
					RequestID: model.StrPtr("abc123"),
					Author:    model.StrPtr("alice"),
					Action:    model.ActionPush,
					ToBranch:  model.StrPtr("main"),
				},
			},
			TotalCount:  13,
			CurrentPage: 1,
			HasNext:     true,
		}}

		w := get(uc, "/events")

		require.Equal(t, nethttp.StatusOK, w.Code)
		assert.Equal(t, 1, uc.lastInput.Page)
		assert.JSONEq(t, `{
			"events": [
				{"_id":"5f1c2f0e-9d1a-4c0b-8e7e-2f1b3c4d5e6f","timestamp":"22 Feb 2026 • 12:45 AM","request_id":"42","author":"bob","action":"MERGE","from_branch":"feature","to_branch":"main"},
				{"_id":"1a2b3c4d-0000-4000-8000-000000000001","timestamp":"21 Feb 2026 • 11:45 AM","request_id":"abc123","author":"alice","action":"PUSH","from_branch":null,"to_branch":"main"}
			],
			"total_count": 13,
			"current_page": 1,
			"has_next": true
		}`, w.Body.String())
	})

	t.Run("empty page renders an empty array", func(t *testing.T) {
		uc := &mockEventUseCase{output: event.ListEventsOutput{TotalCount: 13, CurrentPage: 4}}

		w := get(uc, "/events?page=4")

		require.Equal(t, nethttp.StatusOK, w.Code)
		assert.Equal(t, 4, uc.lastInput.Page)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, []any{}, body["events"])
		assert.Equal(t, false, body["has_next"])
	})

	t.Run("page is trimmed", func(t *testing.T) {
		uc := &mockEventUseCase{}
		w := get(uc, "/events?page=%203%20")

		assert.Equal(t, nethttp.StatusOK, w.Code)
		assert.Equal(t, 3, uc.lastInput.Page)
	})

	t.Run("non-integer page is a 500 with the parse error", func(t *testing.T) {
		uc := &mockEventUseCase{}
		w := get(uc, "/events?page=abc")

		assert.Equal(t, nethttp.StatusInternalServerError, w.Code)
		assert.Equal(t, 0, uc.calls)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Contains(t, body["error"], `invalid page "abc"`)
	})

	t.Run("zero page is a 500", func(t *testing.T) {
		uc := &mockEventUseCase{}
		w := get(uc, "/events?page=0")

		assert.Equal(t, nethttp.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"page must be a positive integer"}`, w.Body.String())
	})

	t.Run("page too large to page through is a 500", func(t *testing.T) {
		for _, page := range []int{event.MaxPage + 1, math.MaxInt} {
			uc := &mockEventUseCase{}
			w := get(uc, "/events?page="+strconv.Itoa(page))

			assert.Equal(t, nethttp.StatusInternalServerError, w.Code)
			assert.JSONEq(t, `{"error":"page is out of range"}`, w.Body.String())
			assert.Equal(t, 0, uc.calls)
		}
	})

	t.Run("storage failure is a 500 with the cause", func(t *testing.T) {
		uc := &mockEventUseCase{err: errors.New("failed to count events: connection refused")}
		w := get(uc, "/events?page=2")

		assert.Equal(t, nethttp.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"failed to count events: connection refused"}`, w.Body.String())
	})
}
