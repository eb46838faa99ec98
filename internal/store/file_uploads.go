package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/prasetyadi/ecosort/internal/config"
	"github.com/prasetyadi/ecosort/internal/logger"
)

// uploadStorage stores uploaded photos on the local filesystem. Files are
// written once and never cleaned up or deduplicated; collisions are avoided
// by prefixing the original name with the current Unix timestamp.
type uploadStorage struct {
	dir    string
	logger *logger.Logger
}

// NewUploadStorage constructs an [UploadStorage] rooted at cfg.Dir, creating
// the directory if it does not exist.
func NewUploadStorage(cfg config.Uploads, log *logger.Logger) (UploadStorage, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		log.Err(err).Str("dir", cfg.Dir).Msg("error creating upload directory")
		return nil, fmt.Errorf("error creating upload directory: %w", err)
	}

	log.Debug().Str("dir", cfg.Dir).Msg("upload storage ready")
	return &uploadStorage{
		dir:    cfg.Dir,
		logger: log,
	}, nil
}

// Save writes the upload to `<unix_timestamp>_<original_filename>` inside
// the upload directory and returns that stored name. No validation of file
// type, size, or content is performed; a non-image file is accepted here and
// only fails later at decode.
func (s *uploadStorage) Save(ctx context.Context, originalName string, data io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	if originalName == "" {
		return "", ErrNoFileProvided
	}

	storedName := fmt.Sprintf("%d_%s", time.Now().Unix(), filepath.Base(originalName))
	target := filepath.Join(s.dir, storedName)

	f, err := os.Create(target)
	if err != nil {
		log.Err(err).Str("path", target).Msg("error creating upload file")
		return "", fmt.Errorf("error creating upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		log.Err(err).Str("path", target).Msg("error writing upload file")
		return "", fmt.Errorf("error writing upload file: %w", err)
	}

	return storedName, nil
}

// Dir reports the upload directory, for the static file route.
func (s *uploadStorage) Dir() string {
	return s.dir
}

// Path returns the full path of a stored file name.
func (s *uploadStorage) Path(storedName string) string {
	return filepath.Join(s.dir, storedName)
}
