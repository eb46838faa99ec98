package store

import (
	"context"
	"fmt"

	"github.com/prasetyadi/ecosort/internal/config"
	"github.com/prasetyadi/ecosort/internal/logger"
)

// Storages bundles every persistence backend the services depend on.
type Storages struct {
	UserRepository   UserRepository
	RecordRepository RecordRepository
	UploadStorage    UploadStorage
}

// NewStorages connects to the SQLite database, applies the embedded
// migrations, prepares the upload area, and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	uploads, err := NewUploadStorage(cfg.Uploads, log)
	if err != nil {
		return nil, fmt.Errorf("error preparing upload storage: %w", err)
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		RecordRepository: NewRecordRepository(db, log),
		UploadStorage:    uploads,
	}, nil
}
