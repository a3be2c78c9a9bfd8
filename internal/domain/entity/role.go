package entity

import "slices"

// Role represents the type of role a token holder can have in the system.
type Role string

const (
	// RoleReader indicates read-only access.
	RoleReader Role = "reader"
	// RoleAdmin indicates a role allowed to create directory entries.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleReader, RoleAdmin:
		return true
	default:
		return false
	}
}

// HasRole reports whether role is present in roles.
func HasRole(roles []string, role Role) bool {
	return slices.Contains(roles, role.String())
}
