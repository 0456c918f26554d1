package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	repo "github-activity-feed/internal/event/repository"
	"github-activity-feed/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// memRepo is an in-memory repository.Repository. Rows are kept in insertion order and
// sorted only when listed, like the real table.
type memRepo struct {
	mu       sync.Mutex
	rows     []model.Event
	nextID   int
	inserts  int
	countErr error
	listErr  error
	insErr   error
}

func (m *memRepo) InsertEvent(ctx context.Context, opt repo.InsertEventOptions) (model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insErr != nil {
		return model.Event{}, m.insErr
	}
	m.nextID++
	m.inserts++
	e := model.Event{
		ID:         fmt.Sprintf("evt-%03d", m.nextID),
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

func (m *memRepo) CountEvents(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.countErr != nil {
		return 0, m.countErr
	}
	return len(m.rows), nil
}

func (m *memRepo) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	sorted := append([]model.Event(nil), m.rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Timestamp.Equal(sorted[j].Timestamp) {
			return sorted[i].ID > sorted[j].ID
		}
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})
	if opt.Offset >= len(sorted) {
		return []model.Event{}, nil
	}
	end := opt.Offset + opt.Limit
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[opt.Offset:end], nil
}

// recordingPublisher captures published subjects.
type recordingPublisher struct {
	mu       sync.Mutex
	subjects []string
	msgs     []any
	err      error
}

func (p *recordingPublisher) Publish(ctx context.Context, subject string, msg any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subjects = append(p.subjects, subject)
	p.msgs = append(p.msgs, msg)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

var errStorageDown = errors.New("storage down")
