package service

import (
	"context"

	"github.com/MKhiriev/go-gate-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AccessService is the access decision engine plus the read side of the
// attempt ledger. Every authenticate call yields either a business Decision
// or an infrastructure error, never both.
type AccessService interface {
	// AuthenticateFacial runs one facial access attempt: extract the probe
	// vector from the image, match it against enrolled identities, check
	// area authorization and persist the attempt record.
	AuthenticateFacial(ctx context.Context, request models.FacialAccessRequest) (models.Decision, error)

	// AuthenticatePIN runs one PIN access attempt against the identities of
	// the requested area.
	AuthenticatePIN(ctx context.Context, request models.PINAccessRequest) (models.Decision, error)

	// ListAccessRecords returns one page of the filtered ledger. Out-of-range
	// page numbers are clamped to the nearest valid page.
	ListAccessRecords(ctx context.Context, filter models.AccessRecordFilter, page, pageSize int) (models.AccessRecordPage, error)

	// GetAccessRecord returns a single ledger row by identifier.
	GetAccessRecord(ctx context.Context, recordID int64) (models.AccessRecord, error)
}

// EmployeeService manages identity records and biometric enrollment.
type EmployeeService interface {
	Create(ctx context.Context, employee models.Employee, pin string) (models.Employee, error)
	GetByID(ctx context.Context, employeeID int64) (models.Employee, error)
	GetAll(ctx context.Context) ([]models.Employee, error)

	// Delete purges the employee together with every ledger row that
	// references it.
	Delete(ctx context.Context, employeeID int64) error

	// RegisterBiometric extracts a feature vector from the enrollment image,
	// encrypts it and stores the resulting pair on the employee record.
	RegisterBiometric(ctx context.Context, employeeID int64, image []byte) error
}

// AreaService reads facility area records.
type AreaService interface {
	GetByID(ctx context.Context, areaID string) (models.Area, error)
	GetAll(ctx context.Context) ([]models.Area, error)
}

// AuthService issues and validates operator bearer tokens.
type AuthService interface {
	// Login exchanges the shared operator key for a signed JWT.
	Login(ctx context.Context, operatorKey string) (models.Token, error)

	// ParseToken validates a raw JWT string and extracts its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
