package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/models"
)

// employeeRepository is the SQL-backed implementation of [EmployeeRepository].
// It handles identity record CRUD against the "employees" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type employeeRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewEmployeeRepository constructs an [EmployeeRepository] backed by the
// provided database connection and logger.
func NewEmployeeRepository(db *DB, logger *logger.Logger) EmployeeRepository {
	logger.Debug().Msg("creating employee repository")
	return &employeeRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new employee record and returns it with server-assigned
// fields (EmployeeID, RegisteredAt).
//
// Error handling:
//   - Unique violation on national_id or email → [ErrEmployeeAlreadyExists].
//   - Any other driver-level error → wrapped as [ErrExecutingStatement].
func (r *employeeRepository) Create(ctx context.Context, employee models.Employee) (models.Employee, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createEmployee,
		employee.FirstName,
		employee.LastName,
		employee.NationalID,
		employee.BirthDate,
		employee.Email,
		employee.Role,
		employee.Status,
		employee.AreaID,
		employee.PINHash,
		employee.RegisteredAt,
	)

	if err := row.Scan(&employee.EmployeeID, &employee.RegisteredAt); err != nil {
		if r.db.isUniqueViolation(err) {
			return models.Employee{}, ErrEmployeeAlreadyExists
		}
		log.Err(err).Str("func", "*employeeRepository.Create").Msg("error inserting employee")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return employee, nil
}

// GetByID retrieves one employee by its identifier.
func (r *employeeRepository) GetByID(ctx context.Context, employeeID int64) (models.Employee, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findEmployeeByID, employeeID)

	employee, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Employee{}, ErrEmployeeNotFound
		}
		log.Err(err).Str("func", "*employeeRepository.GetByID").Int64("employee_id", employeeID).Msg("error scanning employee")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return employee, nil
}

// GetAll retrieves every employee ordered by identifier.
func (r *employeeRepository) GetAll(ctx context.Context) ([]models.Employee, error) {
	return r.queryEmployees(ctx, "*employeeRepository.GetAll", findAllEmployees)
}

// GetWithBiometrics retrieves the matcher's candidate set: Active employees
// whose biometric pair is complete.
func (r *employeeRepository) GetWithBiometrics(ctx context.Context) ([]models.Employee, error) {
	return r.queryEmployees(ctx, "*employeeRepository.GetWithBiometrics", findEmployeesWithBiometrics, models.EmployeeActive)
}

// GetWithPIN retrieves every employee that has a PIN digest.
func (r *employeeRepository) GetWithPIN(ctx context.Context) ([]models.Employee, error) {
	return r.queryEmployees(ctx, "*employeeRepository.GetWithPIN", findEmployeesWithPIN)
}

// UpdateBiometrics overwrites the (ciphertext, nonce) pair in one statement:
// the pair is never half-written.
func (r *employeeRepository) UpdateBiometrics(ctx context.Context, employeeID int64, ciphertext, nonce []byte) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateEmployeeBiometrics, ciphertext, nonce, employeeID)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.UpdateBiometrics").Int64("employee_id", employeeID).Msg("error updating biometrics")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEmployeeNotFound
	}

	return nil
}

// Delete removes the employee together with its access history. Both deletes
// run in one transaction so a purge can never leave orphaned ledger rows.
func (r *employeeRepository) Delete(ctx context.Context, employeeID int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.Delete").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteEmployeeAccessRecords, employeeID); err != nil {
		log.Err(err).Str("func", "*employeeRepository.Delete").Int64("employee_id", employeeID).Msg("error deleting access records")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	result, err := tx.ExecContext(ctx, deleteEmployee, employeeID)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.Delete").Int64("employee_id", employeeID).Msg("error deleting employee")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEmployeeNotFound
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*employeeRepository.Delete").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *employeeRepository) queryEmployees(ctx context.Context, caller, query string, args ...any) ([]models.Employee, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("failed to execute employees query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0, 50)

	for rows.Next() {
		employee, scanErr := scanEmployee(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", caller).Msg("failed to scan employee row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		employees = append(employees, employee)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", caller).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return employees, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (models.Employee, error) {
	var employee models.Employee
	err := row.Scan(
		&employee.EmployeeID,
		&employee.FirstName,
		&employee.LastName,
		&employee.NationalID,
		&employee.BirthDate,
		&employee.Email,
		&employee.Role,
		&employee.Status,
		&employee.AreaID,
		&employee.PINHash,
		&employee.VectorCiphertext,
		&employee.VectorNonce,
		&employee.RegisteredAt,
	)
	return employee, err
}
