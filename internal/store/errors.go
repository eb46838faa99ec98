package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to create a new
	// account fails because the username is already taken. Uniqueness is
	// enforced by the store's UNIQUE constraint, the only concurrency
	// guard relied upon.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when no account matches the supplied
	// username and password exactly. Callers do not learn which of the two
	// was wrong.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrRecordNotSaved is returned when an INSERT of a classification
	// event completes without error but no row id is produced.
	ErrRecordNotSaved = errors.New("record was not saved")

	// ErrNoFileProvided is returned by the upload storage when the request
	// carried no filename.
	ErrNoFileProvided = errors.New("no file was provided")
)
