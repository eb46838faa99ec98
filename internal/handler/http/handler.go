package http

import (
	"github.com/prasetyadi/ecosort/internal/logger"
	"github.com/prasetyadi/ecosort/internal/service"
)

type Handler struct {
	services   *service.Services
	uploadsDir string

	logger *logger.Logger
}

func NewHandler(services *service.Services, uploadsDir string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		uploadsDir: uploadsDir,
		logger:     logger,
	}
}
