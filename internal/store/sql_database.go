package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	sqlite3 "github.com/mattn/go-sqlite3"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-gate-keeper/internal/config"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/migrations"
)

// DB wraps the database/sql connection with the driver name and helpers the
// repositories need (placeholder style, error classification).
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// NewDB opens and pings the configured database. Driver "pgx" targets
// PostgreSQL; "sqlite3" targets a local file and creates it when absent.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if cfg.Driver == "sqlite3" {
		if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
			log.Err(err).Str("func", "NewDB").Msg("error creating database file")
			return nil, fmt.Errorf("error creating database file: %w", err)
		}
	}

	conn, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewDB").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewDB").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewDB").Str("driver", cfg.Driver).Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		driver: cfg.Driver,
		logger: log,
	}, nil
}

// Migrate applies all pending goose migrations for the active driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// placeholders returns the squirrel placeholder format matching the active
// driver: $1-style for PostgreSQL, ?-style for SQLite.
func (db *DB) placeholders() squirrel.PlaceholderFormat {
	if db.driver == "sqlite3" {
		return squirrel.Question
	}
	return squirrel.Dollar
}

// isUniqueViolation reports whether err is the driver-specific unique
// constraint violation.
func (db *DB) isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}
