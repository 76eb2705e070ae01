// Package entity contains the core business objects of the portal.
package entity

// Role is the account variant. It is fixed at creation.
type Role string

const (
	// RoleAdmin reviews student submissions.
	RoleAdmin Role = "admin"
	// RoleStudent owns a profile that goes through approval.
	RoleStudent Role = "student"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStudent:
		return true
	default:
		return false
	}
}

// DashboardPath is where a client should land after login.
func (r Role) DashboardPath() string {
	if r == RoleAdmin {
		return "/admin/dashboard"
	}

	return "/student/dashboard"
}
