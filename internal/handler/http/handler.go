package http

import (
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/service"
	"github.com/MKhiriev/go-gate-keeper/internal/utils"
)

type Handler struct {
	services *service.Services

	// uuid issues trace identifiers for requests arriving without one.
	uuid *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		uuid:     utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
