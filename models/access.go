package models

import "time"

// AccessRecord is one immutable ledger row: a single access attempt and its
// outcome. Records are created exactly once per attempt and never updated;
// the only delete path is the bulk cascade when an employee is purged.
type AccessRecord struct {
	// RecordID is the auto-incrementing ledger identifier.
	RecordID int64 `json:"record_id"`

	// EmployeeID references the resolved identity. It is nil exactly when
	// no identity could be resolved (unrecognized face, unknown PIN, no face
	// detected). A known identity denied for an area mismatch keeps its
	// reference.
	EmployeeID *int64 `json:"employee_id"`

	// AreaID is the area access was requested for.
	AreaID string `json:"area_id"`

	// OccurredAt is the UTC attempt timestamp. Queries order by this field;
	// insertion order is not guaranteed to be monotonic in it.
	OccurredAt time.Time `json:"occurred_at"`

	// Kind distinguishes entries from exits.
	Kind AccessKind `json:"kind"`

	// Method is how the attempt authenticated (Facial, PIN, Manual).
	Method AccessMethod `json:"method"`

	// Device identifies the door device that submitted the attempt.
	Device string `json:"device"`

	// Confidence is the matcher confidence in [0,1]. Meaningful only for
	// the Facial method; PIN attempts record a fixed 1.0.
	Confidence float64 `json:"confidence"`

	// Outcome is Permitted or Denied.
	Outcome Outcome `json:"outcome"`

	// Reason is the human-readable denial reason, empty when permitted.
	Reason string `json:"reason,omitempty"`

	// ReasonCode is the machine-readable denial code, empty when permitted.
	ReasonCode string `json:"reason_code,omitempty"`
}

// TableName returns the name of the database table
// associated with the AccessRecord model.
func (r AccessRecord) TableName() string {
	return "access_records"
}

// AccessRecordFilter narrows a ledger query. Every field is independently
// optional: the zero value selects the whole ledger.
type AccessRecordFilter struct {
	EmployeeID *int64
	AreaID     string
	Kind       AccessKind
	Method     AccessMethod
	Outcome    Outcome
	From       *time.Time
	To         *time.Time

	// Limit and Offset implement pagination at the storage layer.
	// Limit <= 0 means no limit.
	Limit  uint64
	Offset uint64
}

// Pagination carries page arithmetic metadata for a ledger query response.
type Pagination struct {
	Total       int64 `json:"total"`
	Page        int   `json:"page"`
	PageSize    int   `json:"page_size"`
	TotalPages  int   `json:"total_pages"`
	HasPrevious bool  `json:"has_previous"`
	HasNext     bool  `json:"has_next"`
}

// AccessRecordPage is one page of the filtered ledger plus its pagination
// metadata. Total always reflects the full filtered set, not the page.
type AccessRecordPage struct {
	Items      []AccessRecord `json:"items"`
	Pagination Pagination     `json:"pagination"`
}
