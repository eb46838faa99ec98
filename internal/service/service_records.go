package service

import (
	"context"
	"fmt"

	"github.com/prasetyadi/ecosort/internal/logger"
	"github.com/prasetyadi/ecosort/internal/store"
	"github.com/prasetyadi/ecosort/models"
)

// Records serves the per-user deposit history.
type Records struct {
	logger  *logger.Logger
	records store.RecordRepository
}

func NewRecordsService(records store.RecordRepository, log *logger.Logger) *Records {
	return &Records{
		logger:  log.GetChildLogger(),
		records: records,
	}
}

// UserHistory returns the user's records together with their point total.
// The total is summed in the database, not derived from the returned slice.
func (r *Records) UserHistory(ctx context.Context, userID int64) ([]models.Record, int, error) {
	records, err := r.records.ListRecords(ctx, store.ByUser(userID))
	if err != nil {
		return nil, 0, fmt.Errorf("list records for user %d: %w", userID, err)
	}

	total, err := r.records.SumPoints(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("sum points for user %d: %w", userID, err)
	}

	return records, total, nil
}
