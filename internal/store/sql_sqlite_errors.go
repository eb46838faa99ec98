package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// ErrorClassification indicates whether a failed database operation could
// succeed on a retry. The application performs no retries anywhere; the
// classification is logged for diagnostics only.
type ErrorClassification int

const (
	// NonRetryable is the default classification: constraint violations,
	// malformed statements, and unrecognised errors.
	NonRetryable ErrorClassification = iota

	// Retryable covers transient SQLite states such as a busy or locked
	// database file.
	Retryable
)

// ClassifySQLiteError maps a driver error to an [ErrorClassification].
// Returns NonRetryable for nil and for non-SQLite errors.
func ClassifySQLiteError(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NonRetryable
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	}

	return NonRetryable
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint
// failure, the store's only concurrency guard (username uniqueness).
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}
