// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the staff role a clinic employee can have.
type Role string

const (
	// RoleAdmin indicates clinic administration staff.
	RoleAdmin Role = "ADMIN"
	// RoleVet indicates a veterinarian.
	RoleVet Role = "VET"
	// RoleReception indicates front-desk staff.
	RoleReception Role = "RECEPTION"
	// RoleStudent indicates a veterinary student with read-only access.
	RoleStudent Role = "STUDENT"
)

// AuthorityClient is the single authority granted to clinic-owner clients.
const AuthorityClient = "ROLE_CLIENT"

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleVet, RoleReception, RoleStudent:
		return true
	default:
		return false
	}
}

// Authority maps the role to its authority string. The mapping is total over
// the valid roles; invalid roles map to an empty authority, which no guard
// ever accepts.
func (r Role) Authority() string {
	if !r.IsValid() {
		return ""
	}

	return "ROLE_" + string(r)
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// WriteRoles are the staff roles allowed to mutate clinical records.
func WriteRoles() Roles {
	return Roles{RoleAdmin, RoleVet, RoleReception}
}
