package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/models"
)

// accessRecordRepository is the SQL-backed implementation of
// [AccessRecordRepository]. The ledger is append-only: this type exposes no
// update, and the only delete path is the employee-purge cascade owned by
// the employee repository's transaction.
type accessRecordRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAccessRecordRepository constructs an [AccessRecordRepository] backed by
// the provided database connection and logger.
func NewAccessRecordRepository(db *DB, logger *logger.Logger) AccessRecordRepository {
	logger.Debug().Msg("creating access record repository")
	return &accessRecordRepository{
		db:     db,
		logger: logger,
	}
}

// Append inserts one attempt record. The row is immutable afterward.
// Returns [ErrRecordNotSaved] when the INSERT yields no row identifier.
func (r *accessRecordRepository) Append(ctx context.Context, record models.AccessRecord) (models.AccessRecord, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, appendAccessRecord,
		record.EmployeeID,
		record.AreaID,
		record.OccurredAt,
		record.Kind,
		record.Method,
		record.Device,
		record.Confidence,
		record.Outcome,
		record.Reason,
		record.ReasonCode,
	)

	if err := row.Scan(&record.RecordID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Error().Str("func", "*accessRecordRepository.Append").Msg("insert returned no row identifier")
			return models.AccessRecord{}, ErrRecordNotSaved
		}
		log.Err(err).Str("func", "*accessRecordRepository.Append").Msg("error inserting access record")
		return models.AccessRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return record, nil
}

// List executes the filtered ledger query and the matching COUNT. The count
// reflects the full filtered set before Limit/Offset are applied.
func (r *accessRecordRepository) List(ctx context.Context, filter models.AccessRecordFilter) ([]models.AccessRecord, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildListQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*accessRecordRepository.List").Msg("failed to build list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accessRecordRepository.List").Msg("failed to execute list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.AccessRecord, 0, 50)

	for rows.Next() {
		record, scanErr := scanAccessRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*accessRecordRepository.List").Msg("failed to scan access record row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*accessRecordRepository.List").Msg("error occurred during rows iteration")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	countQuery, countArgs, err := r.buildCountQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*accessRecordRepository.List").Msg("failed to build count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*accessRecordRepository.List").Msg("failed to execute count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return records, total, nil
}

// GetByID retrieves one ledger row or [ErrRecordNotFound].
func (r *accessRecordRepository) GetByID(ctx context.Context, recordID int64) (models.AccessRecord, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findAccessRecordByID, recordID)

	record, err := scanAccessRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AccessRecord{}, ErrRecordNotFound
		}
		log.Err(err).Str("func", "*accessRecordRepository.GetByID").Int64("record_id", recordID).Msg("error scanning access record")
		return models.AccessRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

// buildListQuery assembles the filtered SELECT with squirrel. Every filter
// field is independently optional; default ordering is most recent first
// with the row identifier as the tie breaker.
func (r *accessRecordRepository) buildListQuery(filter models.AccessRecordFilter) (string, []any, error) {
	builder := squirrel.StatementBuilder.PlaceholderFormat(r.db.placeholders()).
		Select("record_id", "employee_id", "area_id", "occurred_at", "kind", "method",
			"device", "confidence", "outcome", "reason", "reason_code").
		From("access_records").
		OrderBy("occurred_at DESC", "record_id DESC")

	builder = applyAccessRecordFilter(builder, filter)

	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit).Offset(filter.Offset)
	}

	return builder.ToSql()
}

// buildCountQuery assembles the COUNT twin of buildListQuery, without
// ordering or pagination.
func (r *accessRecordRepository) buildCountQuery(filter models.AccessRecordFilter) (string, []any, error) {
	builder := squirrel.StatementBuilder.PlaceholderFormat(r.db.placeholders()).
		Select("COUNT(*)").
		From("access_records")

	builder = applyAccessRecordFilter(builder, filter)

	return builder.ToSql()
}

func applyAccessRecordFilter(builder squirrel.SelectBuilder, filter models.AccessRecordFilter) squirrel.SelectBuilder {
	if filter.EmployeeID != nil {
		builder = builder.Where(squirrel.Eq{"employee_id": *filter.EmployeeID})
	}
	if filter.AreaID != "" {
		builder = builder.Where(squirrel.Eq{"area_id": filter.AreaID})
	}
	if filter.Kind != "" {
		builder = builder.Where(squirrel.Eq{"kind": filter.Kind})
	}
	if filter.Method != "" {
		builder = builder.Where(squirrel.Eq{"method": filter.Method})
	}
	if filter.Outcome != "" {
		builder = builder.Where(squirrel.Eq{"outcome": filter.Outcome})
	}
	if filter.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"occurred_at": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(squirrel.LtOrEq{"occurred_at": *filter.To})
	}
	return builder
}

func scanAccessRecord(row rowScanner) (models.AccessRecord, error) {
	var record models.AccessRecord
	err := row.Scan(
		&record.RecordID,
		&record.EmployeeID,
		&record.AreaID,
		&record.OccurredAt,
		&record.Kind,
		&record.Method,
		&record.Device,
		&record.Confidence,
		&record.Outcome,
		&record.Reason,
		&record.ReasonCode,
	)
	return record, err
}
