package models

import "time"

// Employee represents an enrolled identity record.
// Sensitive fields (PIN hash, biometric payload) must never be exposed
// outside trusted boundaries.
type Employee struct {
	// EmployeeID is the internal unique identifier, assigned by the database.
	EmployeeID int64 `json:"employee_id"`

	// FirstName and LastName are display name fields.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// NationalID is the government identity number. Unique across all
	// employee records regardless of lifecycle state.
	NationalID string `json:"national_id"`

	// BirthDate is the date of birth in YYYY-MM-DD form.
	BirthDate string `json:"birth_date"`

	// Email is the work email address. Unique across all employee records
	// regardless of lifecycle state.
	Email string `json:"email"`

	// Role is the employee's job role, one of the [Role] constants.
	Role Role `json:"role"`

	// Status is the lifecycle state. Only Active employees can authenticate.
	Status EmployeeStatus `json:"status"`

	// AreaID references the area the employee is assigned to. The area must
	// exist at creation time.
	AreaID string `json:"area_id"`

	// PINHash is the argon2id digest of the employee's access PIN, or nil
	// when no PIN is assigned. The plaintext PIN is never stored.
	PINHash *string `json:"-"`

	// VectorCiphertext and VectorNonce hold the AES-GCM protected facial
	// feature vector. Both are set or both are nil, never one without the
	// other. The plaintext vector is never persisted.
	VectorCiphertext []byte `json:"-"`
	VectorNonce      []byte `json:"-"`

	// RegisteredAt is the UTC enrollment timestamp.
	RegisteredAt time.Time `json:"registered_at"`
}

// TableName returns the name of the database table
// associated with the Employee model.
func (e Employee) TableName() string {
	return "employees"
}

// HasBiometrics reports whether the employee has an enrolled biometric
// payload (ciphertext and nonce both present).
func (e Employee) HasBiometrics() bool {
	return len(e.VectorCiphertext) > 0 && len(e.VectorNonce) > 0
}

// EmployeeSummary is the non-sensitive projection of an [Employee] returned
// by the HTTP layer and embedded in access decisions.
type EmployeeSummary struct {
	EmployeeID    int64          `json:"employee_id"`
	FirstName     string         `json:"first_name"`
	LastName      string         `json:"last_name"`
	NationalID    string         `json:"national_id"`
	BirthDate     string         `json:"birth_date"`
	Email         string         `json:"email"`
	Role          Role           `json:"role"`
	Status        EmployeeStatus `json:"status"`
	AreaID        string         `json:"area_id"`
	HasBiometrics bool           `json:"has_biometrics"`
	RegisteredAt  time.Time      `json:"registered_at"`
}

// Summary converts the employee to its non-sensitive projection.
func (e Employee) Summary() EmployeeSummary {
	return EmployeeSummary{
		EmployeeID:    e.EmployeeID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		NationalID:    e.NationalID,
		BirthDate:     e.BirthDate,
		Email:         e.Email,
		Role:          e.Role,
		Status:        e.Status,
		AreaID:        e.AreaID,
		HasBiometrics: e.HasBiometrics(),
		RegisteredAt:  e.RegisteredAt,
	}
}
