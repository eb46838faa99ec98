package service

import (
	"context"
	"fmt"

	"github.com/prasetyadi/ecosort/internal/inference"
	"github.com/prasetyadi/ecosort/internal/logger"
	"github.com/prasetyadi/ecosort/internal/store"
	"github.com/prasetyadi/ecosort/models"
)

// Admin exposes the administrator views: the registered accounts and the
// deposit records across all users.
type Admin struct {
	logger  *logger.Logger
	users   store.UserRepository
	records store.RecordRepository
}

func NewAdminService(users store.UserRepository, records store.RecordRepository, log *logger.Logger) *Admin {
	return &Admin{
		logger:  log.GetChildLogger(),
		users:   users,
		records: records,
	}
}

func (a *Admin) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := a.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// RecordsOverview returns all records plus one group per model label, in
// the label order of the model output. Labels with no records still get a
// group so the admin page renders every category section.
func (a *Admin) RecordsOverview(ctx context.Context) (RecordsOverview, error) {
	all, err := a.records.ListRecords(ctx, store.RecordFilter{})
	if err != nil {
		return RecordsOverview{}, fmt.Errorf("list all records: %w", err)
	}

	byCategory := make([]CategoryRecords, 0, len(inference.Labels))
	for _, label := range inference.Labels {
		records, err := a.records.ListRecords(ctx, store.ByCategory(label))
		if err != nil {
			return RecordsOverview{}, fmt.Errorf("list %s records: %w", label, err)
		}
		byCategory = append(byCategory, CategoryRecords{Category: label, Records: records})
	}

	return RecordsOverview{All: all, ByCategory: byCategory}, nil
}
