package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a username or password is
	// empty at registration or login.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrSessionInvalid is returned for any session token that fails
	// validation: expired, malformed, or signed with the wrong key.
	ErrSessionInvalid = errors.New("session is expired or invalid")

	// ErrTokenCreationFailed wraps failures while signing a session token.
	ErrTokenCreationFailed = errors.New("session token creation failed")
)
