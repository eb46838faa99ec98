package store

import (
	"context"
	"fmt"
	"time"

	"github.com/prasetyadi/ecosort/internal/logger"
	"github.com/prasetyadi/ecosort/models"
)

// recordRepository is the SQLite-backed implementation of [RecordRepository].
// Classification events are insert-only; no update or delete path exists.
type recordRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRecordRepository constructs a [RecordRepository] backed by the provided
// database connection and logger.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	logger.Debug().Msg("creating record repository")
	return &recordRepository{
		db:     db,
		logger: logger,
	}
}

// CreateRecord inserts one classification event. The timestamp is persisted
// as wall-clock text with second precision; the points value is stored
// exactly as supplied and never recomputed.
func (r *recordRepository) CreateRecord(ctx context.Context, record models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, createRecord,
		record.UserID,
		record.RecordedAt.Format(models.TimeLayout),
		record.Category,
		record.Points,
	)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.CreateRecord").Msg("error inserting record")
		return models.Record{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.CreateRecord").Msg("error reading inserted id")
		return models.Record{}, ErrRecordNotSaved
	}

	record.RecordID = id
	return record, nil
}

// ListRecords returns the events matching filter, ordered by id. The empty
// filter lists every event; user and category filters serve the per-account
// history and the admin per-category views.
func (r *recordRepository) ListRecords(ctx context.Context, filter RecordFilter) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecordsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.ListRecords").Msg("error building query")
		return nil, fmt.Errorf("error building records query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.ListRecords").Msg("error querying records")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var records []models.Record
	for rows.Next() {
		var record models.Record
		var recordedAt string

		if err := rows.Scan(&record.RecordID, &record.UserID, &recordedAt, &record.Category, &record.Points); err != nil {
			log.Err(err).Str("func", "*recordRepository.ListRecords").Msg("error scanning record rows")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}

		record.RecordedAt, err = time.ParseInLocation(models.TimeLayout, recordedAt, time.Local)
		if err != nil {
			log.Err(err).Str("waktu", recordedAt).Msg("error parsing record timestamp")
			return nil, fmt.Errorf("malformed record timestamp: %w", err)
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return records, nil
}

// SumPoints totals the stored point values of one account's events.
// Accounts with no events total 0.
func (r *recordRepository) SumPoints(ctx context.Context, userID int64) (int, error) {
	log := logger.FromContext(ctx)

	var total int
	row := r.db.QueryRowContext(ctx, sumPointsByUser, userID)
	if err := row.Scan(&total); err != nil {
		log.Err(err).Str("func", "*recordRepository.SumPoints").Msg("error scanning points total")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return total, nil
}
