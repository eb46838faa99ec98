package store

import (
	"context"
	"io"

	"github.com/prasetyadi/ecosort/models"
)

// UserRepository persists and looks up account rows.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with the
	// server-assigned id. Duplicate usernames yield
	// [ErrUsernameAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByCredentials returns the account whose username AND
	// password both match exactly, or [ErrNoUserWasFound].
	FindUserByCredentials(ctx context.Context, username, password string) (models.User, error)

	// ListUsers returns every stored account, ordered by id.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// RecordFilter narrows a record listing. Zero-value fields are ignored, so
// the empty filter lists everything.
type RecordFilter struct {
	// UserID, when non-nil, restricts the listing to one account.
	UserID *int64

	// Category, when non-nil, restricts the listing to one material label.
	Category *string
}

// ByUser returns a filter for a single account's records.
func ByUser(userID int64) RecordFilter {
	return RecordFilter{UserID: &userID}
}

// ByCategory returns a filter for a single material label.
func ByCategory(label string) RecordFilter {
	return RecordFilter{Category: &label}
}

// RecordRepository persists and lists classification events. Events are
// immutable: there is no update or delete surface.
type RecordRepository interface {
	// CreateRecord inserts one event and returns it with the
	// server-assigned id.
	CreateRecord(ctx context.Context, record models.Record) (models.Record, error)

	// ListRecords returns the events matching filter, ordered by id.
	ListRecords(ctx context.Context, filter RecordFilter) ([]models.Record, error)

	// SumPoints totals the points of one account's events; 0 when none.
	SumPoints(ctx context.Context, userID int64) (int, error)
}

// UploadStorage persists uploaded photo files to the upload area.
type UploadStorage interface {
	// Save writes the upload under a collision-resistant name derived from
	// originalName and returns the stored file name. An empty originalName
	// yields [ErrNoFileProvided].
	Save(ctx context.Context, originalName string, data io.Reader) (string, error)

	// Dir reports the directory uploads are stored in, for serving.
	Dir() string

	// Path returns the full path of a stored file name.
	Path(storedName string) string
}
