package models

// PINAccessPayload is the JSON body of POST /api/access/pin.
type PINAccessPayload struct {
	PIN    string `json:"pin"`
	Kind   string `json:"kind"`
	AreaID string `json:"area_id"`
	Device string `json:"device"`
}

// EmployeeCreatePayload is the JSON body of POST /api/employees.
// PIN is optional; when present it is hashed before storage and the
// plaintext is discarded.
type EmployeeCreatePayload struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	NationalID string `json:"national_id"`
	BirthDate  string `json:"birth_date"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Status     string `json:"status"`
	AreaID     string `json:"area_id"`
	PIN        string `json:"pin,omitempty"`
}

// LoginPayload is the JSON body of POST /api/auth/login.
type LoginPayload struct {
	OperatorKey string `json:"operator_key"`
}

// TokenResponse is the JSON response of a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the uniform JSON error envelope of the HTTP API.
type ErrorResponse struct {
	Error string `json:"error"`
}
