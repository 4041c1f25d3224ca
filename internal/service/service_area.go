package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/internal/store"
	"github.com/MKhiriev/go-gate-keeper/models"
)

// areaService is the concrete implementation of AreaService.
type areaService struct {
	areas  store.AreaRepository
	logger *logger.Logger
}

func NewAreaService(storages *store.Storages, logger *logger.Logger) AreaService {
	return &areaService{
		areas:  storages.Areas,
		logger: logger,
	}
}

func (s *areaService) GetByID(ctx context.Context, areaID string) (models.Area, error) {
	log := logger.FromContext(ctx)

	if areaID == "" {
		log.Error().Msg("empty area identifier provided")
		return models.Area{}, ErrInvalidDataProvided
	}

	area, err := s.areas.GetByID(ctx, areaID)
	if err != nil {
		log.Err(err).Str("area_id", areaID).Msg("area lookup failed")
		return models.Area{}, fmt.Errorf("area lookup failed: %w", err)
	}

	return area, nil
}

func (s *areaService) GetAll(ctx context.Context) ([]models.Area, error) {
	log := logger.FromContext(ctx)

	areas, err := s.areas.GetAll(ctx)
	if err != nil {
		log.Err(err).Msg("area listing failed")
		return nil, fmt.Errorf("area listing failed: %w", err)
	}

	return areas, nil
}
