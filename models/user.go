package models

// User represents an account entity used for authentication.
// Passwords are stored exactly as supplied at signup and compared with
// exact string equality at login; this mirrors the reference behavior of
// the system and is intentionally not hardened without sign-off.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Username is the unique login identifier.
	Username string `json:"username"`

	// Password is the stored credential, compared verbatim at login.
	// Never exposed via JSON.
	Password string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
