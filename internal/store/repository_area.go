package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/models"
)

// areaRepository is the SQL-backed implementation of [AreaRepository].
type areaRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAreaRepository constructs an [AreaRepository] backed by the provided
// database connection and logger.
func NewAreaRepository(db *DB, logger *logger.Logger) AreaRepository {
	logger.Debug().Msg("creating area repository")
	return &areaRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves one area or [ErrAreaNotFound].
func (r *areaRepository) GetByID(ctx context.Context, areaID string) (models.Area, error) {
	log := logger.FromContext(ctx)

	var area models.Area
	row := r.db.QueryRowContext(ctx, findAreaByID, areaID)
	if err := row.Scan(&area.AreaID, &area.Name, &area.Description, &area.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Area{}, ErrAreaNotFound
		}
		log.Err(err).Str("func", "*areaRepository.GetByID").Str("area_id", areaID).Msg("error scanning area")
		return models.Area{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return area, nil
}

// GetAll retrieves every area ordered by identifier.
func (r *areaRepository) GetAll(ctx context.Context) ([]models.Area, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findAllAreas)
	if err != nil {
		log.Err(err).Str("func", "*areaRepository.GetAll").Msg("failed to execute areas query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	areas := make([]models.Area, 0, 10)

	for rows.Next() {
		var area models.Area
		if scanErr := rows.Scan(&area.AreaID, &area.Name, &area.Description, &area.Status); scanErr != nil {
			log.Err(scanErr).Str("func", "*areaRepository.GetAll").Msg("failed to scan area row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		areas = append(areas, area)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*areaRepository.GetAll").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return areas, nil
}
