package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prasetyadi/ecosort/internal/imaging"
	"github.com/prasetyadi/ecosort/internal/inference"
	"github.com/prasetyadi/ecosort/internal/logger"
	"github.com/prasetyadi/ecosort/internal/reward"
	"github.com/prasetyadi/ecosort/internal/store"
	"github.com/prasetyadi/ecosort/models"
)

// Classifier runs an uploaded photo through the waste model and persists
// the resulting record. The file is stored first and kept regardless of
// whether classification succeeds afterwards.
type Classifier struct {
	logger     *logger.Logger
	records    store.RecordRepository
	uploads    store.UploadStorage
	classifier inference.Classifier
}

func NewClassifyService(records store.RecordRepository, uploads store.UploadStorage, classifier inference.Classifier, log *logger.Logger) *Classifier {
	return &Classifier{
		logger:     log.GetChildLogger(),
		records:    records,
		uploads:    uploads,
		classifier: classifier,
	}
}

func (c *Classifier) Classify(ctx context.Context, userID int64, originalName string, file io.Reader) (models.Classification, error) {
	log := logger.FromContext(ctx)

	stored, err := c.uploads.Save(ctx, originalName, file)
	if err != nil {
		return models.Classification{}, fmt.Errorf("save upload: %w", err)
	}

	f, err := os.Open(c.uploads.Path(stored))
	if err != nil {
		return models.Classification{}, fmt.Errorf("reopen upload %s: %w", stored, err)
	}
	defer f.Close()

	height, width := c.classifier.InputGeometry()
	tensor, err := imaging.PrepareTensor(f, height, width)
	if err != nil {
		return models.Classification{}, fmt.Errorf("prepare tensor: %w", err)
	}

	prediction, err := c.classifier.Classify(ctx, tensor)
	if err != nil {
		return models.Classification{}, fmt.Errorf("classify: %w", err)
	}

	points := reward.PointsFor(prediction.Category)
	record, err := c.records.CreateRecord(ctx, models.Record{
		UserID:     userID,
		RecordedAt: time.Now(),
		Category:   prediction.Category,
		Points:     points,
	})
	if err != nil {
		return models.Classification{}, fmt.Errorf("save record: %w", err)
	}

	log.Info().Str("func", "Classify").
		Int64("user_id", userID).
		Str("category", prediction.Category).
		Float32("confidence", prediction.Confidence).
		Int("points", points).
		Msg("photo classified")

	return models.Classification{
		StoredFile: stored,
		Category:   prediction.Category,
		Confidence: prediction.Confidence,
		Points:     points,
		Record:     record,
	}, nil
}
