package service

import (
	"context"
	"io"

	"github.com/prasetyadi/ecosort/models"
)

// AuthService resolves credentials into identities and manages the session
// token lifecycle.
type AuthService interface {
	// Register creates a new stored account. Empty username or password
	// yields [ErrInvalidDataProvided]; a taken username surfaces
	// store.ErrUsernameAlreadyExists.
	Register(ctx context.Context, username, password string) (models.User, error)

	// Login resolves the supplied credentials into an identity. The
	// hardcoded admin credential is checked first, before the store; it
	// grants the admin variant without any database lookup. A failed
	// lookup does not reveal whether the username or the password was
	// wrong.
	Login(ctx context.Context, username, password string) (models.Identity, error)

	// CreateSessionToken issues a signed session token carrying identity.
	CreateSessionToken(ctx context.Context, identity models.Identity) (models.Token, error)

	// ParseSessionToken validates a raw session token and returns the
	// identity it carries, or [ErrSessionInvalid].
	ParseSessionToken(ctx context.Context, tokenString string) (models.Identity, error)
}

// ClassifyService runs the full classification pipeline for one upload:
// save, preprocess, infer, award points, record.
type ClassifyService interface {
	Classify(ctx context.Context, userID int64, originalName string, file io.Reader) (models.Classification, error)
}

// RecordsService serves an account's own classification history.
type RecordsService interface {
	// UserHistory returns the account's events and its point total
	// (0 when there are no events).
	UserHistory(ctx context.Context, userID int64) ([]models.Record, int, error)
}

// CategoryRecords is one admin per-category listing.
type CategoryRecords struct {
	Category string
	Records  []models.Record
}

// RecordsOverview is the admin records view: every event plus one filtered
// listing per material category, produced by one store call each.
type RecordsOverview struct {
	All        []models.Record
	ByCategory []CategoryRecords
}

// AdminService serves the administrative views over all accounts and events.
type AdminService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	RecordsOverview(ctx context.Context) (RecordsOverview, error)
}
