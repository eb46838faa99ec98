package service

import (
	"github.com/prasetyadi/ecosort/internal/config"
	"github.com/prasetyadi/ecosort/internal/inference"
	"github.com/prasetyadi/ecosort/internal/logger"
	"github.com/prasetyadi/ecosort/internal/store"
)

// Services wires all application services over the shared storages and
// the loaded classifier.
type Services struct {
	Auth     AuthService
	Classify ClassifyService
	Records  RecordsService
	Admin    AdminService
}

func NewServices(storages *store.Storages, classifier inference.Classifier, cfg *config.StructuredConfig, log *logger.Logger) *Services {
	return &Services{
		Auth:     NewAuthService(storages.UserRepository, cfg.App, log),
		Classify: NewClassifyService(storages.RecordRepository, storages.UploadStorage, classifier, log),
		Records:  NewRecordsService(storages.RecordRepository, log),
		Admin:    NewAdminService(storages.UserRepository, storages.RecordRepository, log),
	}
}
