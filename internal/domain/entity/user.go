// Package entity contains the core business objects of the portal,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a single account, either an admin or a student.
// Student-only data lives in Student and is nil for admins.
type User struct {
	ID            uuid.UUID       // Assigned at creation, never changes.
	FullName      string          // Display name, at most 100 characters.
	Role          Role            // admin or student, immutable.
	Email         string          // Institutional email, stored lowercased.
	PersonalEmail string          // Secondary email, stored lowercased. Optional for admins.
	PasswordHash  string          `json:"-"`
	IsActive      bool            // Inactive users cannot authenticate.
	Student       *StudentProfile // nil for admins.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsStudent reports whether the user is a student with a profile attached.
func (u *User) IsStudent() bool {
	return u != nil && u.Role == RoleStudent && u.Student != nil
}

// NormalizeEmail lowercases and trims an email address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UserSummary is the public projection of a user returned by auth endpoints.
type UserSummary struct {
	ID             uuid.UUID      `json:"id"`
	FullName       string         `json:"full_name"`
	Email          string         `json:"email"`
	Role           Role           `json:"role"`
	IsActive       bool           `json:"is_active"`
	ApprovalStatus ApprovalStatus `json:"approval_status,omitempty"`
	Department     Department     `json:"department,omitempty"`
}

// Summary builds the public projection of u.
func (u *User) Summary() UserSummary {
	summary := UserSummary{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
	if u.IsStudent() {
		summary.ApprovalStatus = u.Student.ApprovalStatus
		summary.Department = u.Student.Department
	}

	return summary
}
