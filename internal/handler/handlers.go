package handler

import (
	"github.com/prasetyadi/ecosort/internal/config"
	"github.com/prasetyadi/ecosort/internal/handler/http"
	"github.com/prasetyadi/ecosort/internal/logger"
	"github.com/prasetyadi/ecosort/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, uploadsDir string, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, uploadsDir, logger),
	}, nil
}
