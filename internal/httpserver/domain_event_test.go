package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github-activity-feed/internal/event/repository"
	"github-activity-feed/internal/model"
	"github-activity-feed/pkg/response"
)

// memRepository keeps events in memory and lists them newest first.
type memRepository struct {
	mu   sync.Mutex
	rows []model.Event
}

func (m *memRepository) InsertEvent(ctx context.Context, opt repository.InsertEventOptions) (model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := model.Event{
		ID:         uuid.NewString(),
		Timestamp:  opt.Timestamp,
		RequestID:  opt.RequestID,
		Author:     opt.Author,
		Action:     opt.Action,
		FromBranch: opt.FromBranch,
		ToBranch:   opt.ToBranch,
	}
	m.rows = append(m.rows, e)
	return e, nil
}

func (m *memRepository) CountEvents(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows), nil
}

func (m *memRepository) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []model.Event{}
	for i := len(m.rows) - 1 - opt.Offset; i >= 0 && len(out) < opt.Limit; i-- {
		out = append(out, m.rows[i])
	}
	return out, nil
}

type feedEvent struct {
	ID         string  `json:"_id"`
	Timestamp  string  `json:"timestamp"`
	RequestID  *string `json:"request_id"`
	Author     *string `json:"author"`
	Action     string  `json:"action"`
	FromBranch *string `json:"from_branch"`
	ToBranch   *string `json:"to_branch"`
}

type feedPage struct {
	Events      []feedEvent `json:"events"`
	TotalCount  int         `json:"total_count"`
	CurrentPage int         `json:"current_page"`
	HasNext     bool        `json:"has_next"`
}

func newEventRouter(t *testing.T) *gin.Engine {
	t.Helper()
	srv, _ := newTestServer(t)

	r := gin.New()
	srv.registerEventRoutes(r, &memRepository{})
	return r
}

func postWebhook(t *testing.T, r *gin.Engine, eventType, body string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Event", eventType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"msg":"stored"}`, w.Body.String())
}

func getFeed(t *testing.T, r *gin.Engine, page string) feedPage {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/events?page="+page, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var out feedPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestEventDomain_WebhookToFeed(t *testing.T) {
	r := newEventRouter(t)
	before := time.Now().UTC().Truncate(time.Minute)

	postWebhook(t, r, "push", `{"after":"abc123","pusher":{"name":"alice"},"ref":"refs/heads/main"}`)
	postWebhook(t, r, "pull_request", `{"action":"closed","pull_request":{"id":42,"user":{"login":"bob"},"head":{"ref":"feature"},"base":{"ref":"main"},"merged":true}}`)

	after := time.Now().UTC()
	page := getFeed(t, r, "1")

	assert.Equal(t, 2, page.TotalCount)
	assert.Equal(t, 1, page.CurrentPage)
	assert.False(t, page.HasNext)
	require.Len(t, page.Events, 2)

	merge, push := page.Events[0], page.Events[1]

	assert.Equal(t, "MERGE", merge.Action)
	assert.Equal(t, "42", model.StrVal(merge.RequestID))
	assert.Equal(t, "bob", model.StrVal(merge.Author))
	assert.Equal(t, "feature", model.StrVal(merge.FromBranch))
	assert.Equal(t, "main", model.StrVal(merge.ToBranch))

	assert.Equal(t, "PUSH", push.Action)
	assert.Equal(t, "abc123", model.StrVal(push.RequestID))
	assert.Equal(t, "alice", model.StrVal(push.Author))
	assert.Nil(t, push.FromBranch)
	assert.Equal(t, "main", model.StrVal(push.ToBranch))

	for _, e := range page.Events {
		_, err := uuid.Parse(e.ID)
		assert.NoError(t, err, "_id %q", e.ID)

		ts, err := time.Parse(response.DisplayTimeFormat, e.Timestamp)
		require.NoError(t, err, "timestamp %q", e.Timestamp)
		assert.False(t, ts.Before(before), "timestamp %s before request", e.Timestamp)
		assert.False(t, ts.After(after), "timestamp %s after request", e.Timestamp)
	}
}

func TestEventDomain_ThirteenRecordsPaginate(t *testing.T) {
	r := newEventRouter(t)
	for i := 0; i < 13; i++ {
		postWebhook(t, r, "push", `{"after":"sha","pusher":{"name":"alice"},"ref":"refs/heads/main"}`)
	}

	p1, p2, p3 := getFeed(t, r, "1"), getFeed(t, r, "2"), getFeed(t, r, "3")

	assert.Len(t, p1.Events, 6)
	assert.True(t, p1.HasNext)
	assert.Len(t, p2.Events, 6)
	assert.True(t, p2.HasNext)
	assert.Len(t, p3.Events, 1)
	assert.False(t, p3.HasNext)
	assert.Equal(t, 13, p3.TotalCount)
}
