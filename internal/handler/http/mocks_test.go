package http

import (
	"context"
	"io"

	"github.com/prasetyadi/ecosort/internal/logger"
	"github.com/prasetyadi/ecosort/internal/service"
	"github.com/prasetyadi/ecosort/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn           func(ctx context.Context, username, password string) (models.User, error)
	loginFn              func(ctx context.Context, username, password string) (models.Identity, error)
	createSessionTokenFn func(ctx context.Context, identity models.Identity) (models.Token, error)
	parseSessionTokenFn  func(ctx context.Context, tokenString string) (models.Identity, error)
}

func (m *mockAuthService) Register(ctx context.Context, username, password string) (models.User, error) {
	return m.registerFn(ctx, username, password)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.Identity, error) {
	return m.loginFn(ctx, username, password)
}

func (m *mockAuthService) CreateSessionToken(ctx context.Context, identity models.Identity) (models.Token, error) {
	if m.createSessionTokenFn != nil {
		return m.createSessionTokenFn(ctx, identity)
	}
	return stubToken("signed.session.token"), nil
}

func (m *mockAuthService) ParseSessionToken(ctx context.Context, tokenString string) (models.Identity, error) {
	return m.parseSessionTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Mock ClassifyService
// ─────────────────────────────────────────────

type mockClassifyService struct {
	classifyFn func(ctx context.Context, userID int64, originalName string, file io.Reader) (models.Classification, error)
}

func (m *mockClassifyService) Classify(ctx context.Context, userID int64, originalName string, file io.Reader) (models.Classification, error) {
	return m.classifyFn(ctx, userID, originalName, file)
}

// ─────────────────────────────────────────────
// Mock RecordsService
// ─────────────────────────────────────────────

type mockRecordsService struct {
	userHistoryFn func(ctx context.Context, userID int64) ([]models.Record, int, error)
}

func (m *mockRecordsService) UserHistory(ctx context.Context, userID int64) ([]models.Record, int, error) {
	if m.userHistoryFn != nil {
		return m.userHistoryFn(ctx, userID)
	}
	return nil, 0, nil
}

// ─────────────────────────────────────────────
// Mock AdminService
// ─────────────────────────────────────────────

type mockAdminService struct {
	listUsersFn       func(ctx context.Context) ([]models.User, error)
	recordsOverviewFn func(ctx context.Context) (service.RecordsOverview, error)
}

func (m *mockAdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(ctx)
	}
	return nil, nil
}

func (m *mockAdminService) RecordsOverview(ctx context.Context) (service.RecordsOverview, error) {
	if m.recordsOverviewFn != nil {
		return m.recordsOverviewFn(ctx)
	}
	return service.RecordsOverview{}, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given service mocks. Nil mocks
// are left nil: a test touching an unmocked service will panic, which makes
// unexpected calls loud.
func newTestHandler(auth service.AuthService, classify service.ClassifyService, records service.RecordsService, admin service.AdminService) *Handler {
	svcs := &service.Services{
		Auth:     auth,
		Classify: classify,
		Records:  records,
		Admin:    admin,
	}
	return NewHandler(svcs, "static/uploads", logger.Nop())
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// sessionAuth returns an AuthService whose ParseSessionToken accepts exactly
// validToken and resolves it to identity.
func sessionAuth(validToken string, identity models.Identity) *mockAuthService {
	return &mockAuthService{
		parseSessionTokenFn: func(_ context.Context, tokenString string) (models.Identity, error) {
			if tokenString == validToken {
				return identity, nil
			}
			return models.Identity{}, service.ErrSessionInvalid
		},
	}
}

var accountIdentity = models.Identity{UserID: 3, Username: "budi", Role: models.RoleAccount}

var adminIdentity = models.AdminIdentity("admin")
