package http

import (
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	tokenSignKey string
	tokenIssuer  string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}
