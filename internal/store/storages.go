package store

import (
	"context"

	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
)

// Storages bundles every repository over a single database connection.
type Storages struct {
	Employees     EmployeeRepository
	Areas         AreaRepository
	AccessRecords AccessRecordRepository

	db *DB
}

// NewStorages opens the database, runs pending migrations and wires all
// repositories over the shared connection.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		Employees:     NewEmployeeRepository(db, log),
		Areas:         NewAreaRepository(db, log),
		AccessRecords: NewAccessRecordRepository(db, log),
		db:            db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
