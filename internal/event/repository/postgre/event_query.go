package postgre

import (
	"database/sql"
	"fmt"
	"strings"

	"github-activity-feed/internal/event/repository"
)

// buildListQuery builds the ORDER + LIMIT + OFFSET clause for ListEvents.
func (r *implRepository) buildListQuery(opt repository.ListEventsOptions) (string, []any) {
	parts := []string{`ORDER BY "timestamp" DESC, id DESC`}
	var args []any
	idx := 1

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
