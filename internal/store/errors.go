package store

import (
	"database/sql"
	"errors"

	"github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when a lookup, update or delete matched no row.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when an insert violates a uniqueness constraint.
var ErrConflict = errors.New("already exists")

// isUniqueViolation reports whether err is a SQLite unique-constraint
// failure, so callers can map it to ErrConflict instead of a generic 500.
func isUniqueViolation(err error) bool {
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.ExtendedCode == sqlite3.ErrConstraintUnique ||
			se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

// requireRow converts a zero-rows-affected result into ErrNotFound, the
// shared contract for update and delete methods.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
