package models

// Denial reason codes carried by decisions and ledger rows. The code is the
// stable machine-readable form; the Reason string on the decision is the
// human-readable one.
const (
	ReasonCodeNotRecognized     = "identity_not_recognized"
	ReasonCodeInvalidCredential = "invalid_credential"
	ReasonCodeIdentityInactive  = "identity_inactive"
	ReasonCodeAreaMismatch      = "area_mismatch"
	ReasonCodeNoFaceDetected    = "no_face_detected"
	ReasonCodeMultipleFaces     = "multiple_faces"
)

// Decision is the final, structured result of one access attempt. A Decision
// is always a business outcome: infrastructure failures are reported as
// errors instead and never produce a Decision.
type Decision struct {
	// Permitted is true when access was granted.
	Permitted bool `json:"permitted"`

	// Employee is the matched identity summary, nil when no identity was
	// resolved.
	Employee *EmployeeSummary `json:"employee,omitempty"`

	// AreaID is the area access was requested for.
	AreaID string `json:"area_id"`

	// Kind and Method mirror the attempt parameters.
	Kind   AccessKind   `json:"kind"`
	Method AccessMethod `json:"method"`

	// Confidence is the matcher confidence (1 - distance) for facial
	// attempts, fixed 1.0 for PIN attempts, 0 when no identity was resolved.
	Confidence float64 `json:"confidence"`

	// Reason and ReasonCode explain a denial; both are empty when permitted.
	Reason     string `json:"reason,omitempty"`
	ReasonCode string `json:"reason_code,omitempty"`
}

// FacialAccessRequest is one facial access attempt as received from a door
// device.
type FacialAccessRequest struct {
	Image  []byte
	Kind   AccessKind
	AreaID string
	Device string
}

// PINAccessRequest is one PIN access attempt as received from a door device.
type PINAccessRequest struct {
	PIN    string
	Kind   AccessKind
	AreaID string
	Device string
}
