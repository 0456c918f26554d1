package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"github-activity-feed/internal/event/repository"
	"github-activity-feed/internal/model"
)

const eventColumns = `id, "timestamp", request_id, author, action, from_branch, to_branch`

// InsertEvent writes a single row. The id is generated here so callers never pick one.
func (r *implRepository) InsertEvent(ctx context.Context, opt repository.InsertEventOptions) (model.Event, error) {
	const query = `
		INSERT INTO github_events (id, "timestamp", request_id, author, action, from_branch, to_branch)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	e := model.Event{
		ID:         r.newID(),
		Timestamp:  opt.Timestamp.UTC(),
		RequestID:  opt.RequestID,
		Author:     opt.Author,
		Action:     opt.Action,
		FromBranch: opt.FromBranch,
		ToBranch:   opt.ToBranch,
	}

	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.Timestamp, nullString(e.RequestID), nullString(e.Author),
		string(e.Action), nullString(e.FromBranch), nullString(e.ToBranch),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("InsertEvent"), err)
		return model.Event{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}
	return e, nil
}

// CountEvents counts every stored event, unfiltered.
func (r *implRepository) CountEvents(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM github_events`).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountEvents"), err)
		return 0, fmt.Errorf("%w: %v", repository.ErrFailedToCount, err)
	}
	return total, nil
}

// ListEvents returns one page ordered newest first. Ties on timestamp are broken by id
// so repeated reads return the same order.
func (r *implRepository) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.Event, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM github_events %s`, eventColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	defer rows.Close()

	events := make([]model.Event, 0, opt.Limit)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListEvents"), err)
			return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListEvents"), err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}
	return events, nil
}

func scanEvent(rows *sql.Rows) (model.Event, error) {
	var e model.Event
	var action string
	var requestID, author, fromBranch, toBranch sql.NullString
	if err := rows.Scan(&e.ID, &e.Timestamp, &requestID, &author, &action, &fromBranch, &toBranch); err != nil {
		return model.Event{}, err
	}
	e.Timestamp = e.Timestamp.UTC()
	e.Action = model.Action(action)
	e.RequestID = stringPtr(requestID)
	e.Author = stringPtr(author)
	e.FromBranch = stringPtr(fromBranch)
	e.ToBranch = stringPtr(toBranch)
	return e, nil
}
