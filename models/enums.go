// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role is the closed set of job roles an employee can hold.
type Role string

const (
	RoleSupervisor     Role = "Supervisor"
	RoleOperator       Role = "Operator"
	RoleShiftLead      Role = "ShiftLead"
	RoleQualityControl Role = "QualityControl"
	RoleMaintenance    Role = "Maintenance"
	RoleAdministration Role = "Administration"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSupervisor, RoleOperator, RoleShiftLead,
		RoleQualityControl, RoleMaintenance, RoleAdministration:
		return true
	}
	return false
}

// EmployeeStatus is the lifecycle state of an employee record.
// It is a soft-delete flag: rows are never hard-deleted on deactivation.
type EmployeeStatus string

const (
	EmployeeActive    EmployeeStatus = "Active"
	EmployeeInactive  EmployeeStatus = "Inactive"
	EmployeeSuspended EmployeeStatus = "Suspended"
)

// Valid reports whether s is one of the known lifecycle states.
func (s EmployeeStatus) Valid() bool {
	switch s {
	case EmployeeActive, EmployeeInactive, EmployeeSuspended:
		return true
	}
	return false
}

// AreaStatus is the lifecycle state of an area.
type AreaStatus string

const (
	AreaActive   AreaStatus = "Active"
	AreaInactive AreaStatus = "Inactive"
)

// AccessKind distinguishes entries from exits.
type AccessKind string

const (
	AccessEntry AccessKind = "Entry"
	AccessExit  AccessKind = "Exit"
)

// Valid reports whether k is one of the known access kinds.
func (k AccessKind) Valid() bool {
	return k == AccessEntry || k == AccessExit
}

// AccessMethod is how an access attempt authenticated itself.
type AccessMethod string

const (
	MethodFacial AccessMethod = "Facial"
	MethodPIN    AccessMethod = "PIN"
	MethodManual AccessMethod = "Manual"
)

// Outcome is the two-valued result of an access attempt.
type Outcome string

const (
	OutcomePermitted Outcome = "Permitted"
	OutcomeDenied    Outcome = "Denied"
)
