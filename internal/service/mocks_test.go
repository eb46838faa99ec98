package service

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/prasetyadi/ecosort/internal/inference"
	"github.com/prasetyadi/ecosort/internal/store"
	"github.com/prasetyadi/ecosort/models"
)

var errStorage = errors.New("storage error")

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn            func(ctx context.Context, user models.User) (models.User, error)
	findUserByCredentialsFn func(ctx context.Context, username, password string) (models.User, error)
	listUsersFn             func(ctx context.Context) ([]models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByCredentials(ctx context.Context, username, password string) (models.User, error) {
	if m.findUserByCredentialsFn != nil {
		return m.findUserByCredentialsFn(ctx, username, password)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *mockUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(ctx)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.RecordRepository
// ─────────────────────────────────────────────

type mockRecordRepository struct {
	createRecordFn func(ctx context.Context, record models.Record) (models.Record, error)
	listRecordsFn  func(ctx context.Context, filter store.RecordFilter) ([]models.Record, error)
	sumPointsFn    func(ctx context.Context, userID int64) (int, error)
}

func (m *mockRecordRepository) CreateRecord(ctx context.Context, record models.Record) (models.Record, error) {
	if m.createRecordFn != nil {
		return m.createRecordFn(ctx, record)
	}
	record.RecordID = 1
	return record, nil
}

func (m *mockRecordRepository) ListRecords(ctx context.Context, filter store.RecordFilter) ([]models.Record, error) {
	if m.listRecordsFn != nil {
		return m.listRecordsFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockRecordRepository) SumPoints(ctx context.Context, userID int64) (int, error) {
	if m.sumPointsFn != nil {
		return m.sumPointsFn(ctx, userID)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// Mock: store.UploadStorage
// ─────────────────────────────────────────────

// mockUploadStorage writes uploads into a real directory so the classify
// pipeline can reopen them the way the production storage allows.
type mockUploadStorage struct {
	dir    string
	saveFn func(ctx context.Context, originalName string, data io.Reader) (string, error)
}

func (m *mockUploadStorage) Save(ctx context.Context, originalName string, data io.Reader) (string, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, originalName, data)
	}

	stored := "stored_" + originalName
	f, err := os.Create(filepath.Join(m.dir, stored))
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, data); err != nil {
		return "", err
	}
	return stored, nil
}

func (m *mockUploadStorage) Dir() string { return m.dir }

func (m *mockUploadStorage) Path(storedName string) string {
	return filepath.Join(m.dir, storedName)
}

// ─────────────────────────────────────────────
// Mock: inference.Classifier
// ─────────────────────────────────────────────

type mockClassifier struct {
	classifyFn func(ctx context.Context, input []float32) (inference.Prediction, error)
	height     int
	width      int
}

func (m *mockClassifier) Classify(ctx context.Context, input []float32) (inference.Prediction, error) {
	if m.classifyFn != nil {
		return m.classifyFn(ctx, input)
	}
	return inference.Prediction{}, nil
}

func (m *mockClassifier) InputGeometry() (int, int) {
	if m.height == 0 {
		return 4, 4
	}
	return m.height, m.width
}

func (m *mockClassifier) Close() error { return nil }
