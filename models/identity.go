package models

// Role distinguishes the two identity variants resolved at authentication
// time. Admin-gated handlers check the role, never a username string.
type Role string

const (
	// RoleAccount is a regular stored account.
	RoleAccount Role = "account"

	// RoleAdmin is the built-in administrative identity. It is never
	// persisted; it exists only for the duration of a session.
	RoleAdmin Role = "admin"
)

// AdminUserID is the reserved identifier of the in-session admin identity.
const AdminUserID int64 = 0

// Identity is the resolved principal associated with an active session.
// It is attached to the request context by the session middleware so that
// handlers never consult ambient global state.
type Identity struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// IsAdmin reports whether the identity is the administrative variant.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// AdminIdentity returns the built-in administrative identity granted when
// the hardcoded admin credential matches.
func AdminIdentity(username string) Identity {
	return Identity{UserID: AdminUserID, Username: username, Role: RoleAdmin}
}

// AccountIdentity returns the identity of a stored account.
func AccountIdentity(user User) Identity {
	return Identity{UserID: user.UserID, Username: user.Username, Role: RoleAccount}
}
