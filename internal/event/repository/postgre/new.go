package postgre

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github-activity-feed/internal/event/repository"
	"github-activity-feed/pkg/log"
)

type implRepository struct {
	db    *sql.DB
	l     log.Logger
	newID func() string
}

// New creates a new PostgreSQL-backed Repository for the event domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("event/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l, newID: uuid.NewString}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("event/repository/postgre.%s", method)
}
