package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/prasetyadi/ecosort/internal/config"
	"github.com/prasetyadi/ecosort/internal/handler"
	"github.com/prasetyadi/ecosort/internal/inference"
	"github.com/prasetyadi/ecosort/internal/logger"
	"github.com/prasetyadi/ecosort/internal/server"
	"github.com/prasetyadi/ecosort/internal/service"
	"github.com/prasetyadi/ecosort/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// missing .env is fine, env vars may come from the environment itself
	_ = godotenv.Load()

	log := logger.NewLogger("ecosort-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	classifier, err := inference.NewTFLiteClassifier(cfg.Model, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading classification model")
	}
	defer func() {
		if err := classifier.Close(); err != nil {
			log.Err(err).Msg("error closing classification model")
		}
	}()

	services := service.NewServices(storages, classifier, cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, storages.UploadStorage.Dir(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
