package models

// Area represents a physical zone access can be requested for.
type Area struct {
	// AreaID is the operator-assigned string identifier (e.g. "AREA001").
	AreaID string `json:"area_id"`

	// Name is the human-readable display name.
	Name string `json:"name"`

	// Description is free-form operator text.
	Description string `json:"description"`

	// Status is the lifecycle state. Access to an Inactive area is refused
	// before any identification is attempted.
	Status AreaStatus `json:"status"`
}

// TableName returns the name of the database table
// associated with the Area model.
func (a Area) TableName() string {
	return "areas"
}
