// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role is the authorization level of a principal.
type Role string

const (
	// RoleCustomer is a regular storefront shopper.
	RoleCustomer Role = "CUSTOMER"
	// RoleAdmin can read security events and revoke sessions.
	RoleAdmin Role = "ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ParseRole converts a claim value into a Role, returning false for unknown values.
func ParseRole(s string) (Role, bool) {
	role := Role(s)
	if !role.IsValid() {
		return "", false
	}

	return role, true
}
