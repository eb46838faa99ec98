// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys and session
// token generation and validation.
package utils

import (
	"context"

	"github.com/prasetyadi/ecosort/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the session middleware stores the
// resolved [models.Identity] in the request context. Handlers retrieve it
// via GetIdentityFromContext instead of consulting any ambient state.
var IdentityCtxKey = contextKey("identity")

// GetIdentityFromContext retrieves the authenticated identity from the context.
//
// Returns the identity and an ok flag: true when the value is found and has
// the correct type, false otherwise.
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}
