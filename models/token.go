package models

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the JWT claim set carried by the session cookie.
// The subject is the user id; username and role are custom claims so the
// session middleware can rebuild the [Identity] without a store lookup.
type SessionClaims struct {
	jwt.RegisteredClaims

	Username string `json:"name"`
	Role     Role   `json:"role"`
}

// Token wraps a signed session JWT with convenience accessors.
//
// SignedString holds the compact serialized form (header.payload.signature)
// ready to be placed in the session cookie. Identity is a cached copy of the
// principal encoded in the claims, populated at generation or parse time.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Identity is the principal encoded in the token claims.
	Identity Identity `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// ParseIdentity rebuilds an [Identity] from the session claims.
// Returns false if the subject claim is missing or not a base-10 integer.
func (c *SessionClaims) ParseIdentity() (Identity, bool) {
	sub, err := c.GetSubject()
	if err != nil || sub == "" {
		return Identity{}, false
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return Identity{}, false
	}

	return Identity{UserID: userID, Username: c.Username, Role: c.Role}, true
}
