package domain

import "slices"

// Role represents a user role in the system
type Role string

const (
	// RoleSuperAdmin is tenant-less and administers workshops across tenants
	RoleSuperAdmin Role = "SUPERADMIN"

	// RoleAdmin manages a single workshop: users, plans, settings
	RoleAdmin Role = "ADMIN"

	// RoleAttendant handles day-to-day quotes and work orders
	RoleAttendant Role = "ATENDENTE"
)

// ValidRoles contains all valid roles in the system
var ValidRoles = []Role{RoleSuperAdmin, RoleAdmin, RoleAttendant}

// IsValidRole checks if a given role is valid
func IsValidRole(role string) bool {
	return slices.Contains(ValidRoles, Role(role))
}

// AssignableRoles are the roles a workshop admin may grant when creating
// users; SUPERADMIN accounts are provisioned out of band.
var AssignableRoles = []Role{RoleAdmin, RoleAttendant}

func IsAssignableRole(role string) bool {
	return slices.Contains(AssignableRoles, Role(role))
}
