// Package repository implements all database access for the event-ticketing
// API using pgx directly, without an ORM.
package repository

import (
	"errors"
	"time"

	"github.com/LauraInd/TestingAPIs/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert or update violates a unique
// constraint, such as users.email or events.event_name.
var ErrDuplicate = errors.New("duplicate key")

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// scanner is the subset of pgx.Row / pgx.Rows the scan helpers need.
type scanner interface {
	Scan(dest ...any) error
}

// dateArg converts a model.Date to a query argument, mapping the zero date
// to SQL NULL.
func dateArg(d model.Date) any {
	if d.IsZero() {
		return nil
	}
	return d.Time
}

// dateVal converts a scanned nullable date column back to a model.Date.
func dateVal(t *time.Time) model.Date {
	if t == nil {
		return model.Date{}
	}
	return model.Date{Time: *t}
}

// strVal converts a scanned nullable text column to a string.
func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
