package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmployeeAlreadyExists is returned when an INSERT violates the
	// uniqueness of the (national_id, email) natural keys.
	ErrEmployeeAlreadyExists = errors.New("employee with this national ID or email already exists")

	// ErrEmployeeNotFound is returned when a query expected to match one
	// employee record produces an empty result set.
	ErrEmployeeNotFound = errors.New("employee was not found")

	// ErrAreaNotFound is returned when a referenced area does not exist.
	ErrAreaNotFound = errors.New("area was not found")

	// ErrRecordNotFound is returned when a ledger lookup by identifier
	// matches nothing.
	ErrRecordNotFound = errors.New("access record was not found")

	// ErrRecordNotSaved is returned when a ledger INSERT yields no row
	// identifier, meaning the attempt was not persisted.
	ErrRecordNotSaved = errors.New("access record was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
