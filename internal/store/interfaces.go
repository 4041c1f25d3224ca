package store

import (
	"context"

	"github.com/MKhiriev/go-gate-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EmployeeRepository persists identity records.
type EmployeeRepository interface {
	// Create inserts a new employee and returns it with server-assigned
	// fields (EmployeeID, RegisteredAt). A natural-key collision yields
	// [ErrEmployeeAlreadyExists].
	Create(ctx context.Context, employee models.Employee) (models.Employee, error)

	// GetByID returns one employee or [ErrEmployeeNotFound].
	GetByID(ctx context.Context, employeeID int64) (models.Employee, error)

	// GetAll returns every employee ordered by identifier.
	GetAll(ctx context.Context) ([]models.Employee, error)

	// GetWithBiometrics returns the Active employees that have a complete
	// (ciphertext, nonce) biometric pair — the matcher's candidate set.
	GetWithBiometrics(ctx context.Context) ([]models.Employee, error)

	// GetWithPIN returns every employee that has a PIN digest assigned,
	// regardless of area or lifecycle state. Both are the decision
	// engine's concern: a correct PIN from an inactive identity or for
	// the wrong area is a distinct denial, not an unknown credential.
	GetWithPIN(ctx context.Context) ([]models.Employee, error)

	// UpdateBiometrics overwrites the employee's biometric pair in a single
	// statement, keeping ciphertext and nonce atomic.
	UpdateBiometrics(ctx context.Context, employeeID int64, ciphertext, nonce []byte) error

	// Delete removes the employee and, in the same transaction, every
	// access record that references it.
	Delete(ctx context.Context, employeeID int64) error
}

// AreaRepository reads area records.
type AreaRepository interface {
	// GetByID returns one area or [ErrAreaNotFound].
	GetByID(ctx context.Context, areaID string) (models.Area, error)

	// GetAll returns every area ordered by identifier.
	GetAll(ctx context.Context) ([]models.Area, error)
}

// AccessRecordRepository is the append-only ledger of access attempts.
type AccessRecordRepository interface {
	// Append inserts one immutable attempt record and returns it with its
	// server-assigned RecordID.
	Append(ctx context.Context, record models.AccessRecord) (models.AccessRecord, error)

	// List returns the filtered records ordered most recent first, plus the
	// total count of the filtered set before Limit/Offset are applied.
	List(ctx context.Context, filter models.AccessRecordFilter) ([]models.AccessRecord, int64, error)

	// GetByID returns one record or [ErrRecordNotFound].
	GetByID(ctx context.Context, recordID int64) (models.AccessRecord, error)
}
