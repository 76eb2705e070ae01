// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"cardportal/internal/domain/entity"

	"github.com/google/uuid"
)

// StudentFilter narrows a student listing.
type StudentFilter struct {
	Status     entity.ApprovalStatus // empty matches every status
	Department entity.Department     // empty matches every department
	Search     string                // case-insensitive substring of name, emails or registration number
	Submitted  *bool                 // restrict to submitted (or unsubmitted) profiles
}

// DepartmentCount is the per-department row of the dashboard statistics.
type DepartmentCount struct {
	Department entity.Department
	Total      int64
	Approved   int64
}

// StudentStats aggregates the student population in one read.
type StudentStats struct {
	Total        int64
	Active       int64
	ByStatus     map[entity.ApprovalStatus]int64
	ByDepartment []DepartmentCount
}

// UserRepository is the Identity Store: admins and students in one table.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByIDForUpdate is FindByID holding a row lock until the surrounding
	// transaction ends. Only meaningful inside TransactionManager.Execute.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail matches either the institutional or the personal email,
	// case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByCardNumber returns the student holding the card number.
	FindByCardNumber(ctx context.Context, cardNumber string) (*entity.User, error)

	// Create persists a new user. A unique collision yields DuplicateIdentity
	// naming the colliding field.
	Create(ctx context.Context, user *entity.User) error

	// Update writes every mutable column of user in one statement.
	Update(ctx context.Context, user *entity.User) error

	// ListStudents returns one page of students, newest first, and the total
	// number of students matching filter.
	ListStudents(ctx context.Context, filter StudentFilter, offset, limit int) ([]*entity.User, int64, error)

	// Stats counts students per status and per department.
	Stats(ctx context.Context) (*StudentStats, error)

	// RecentStudents returns the most recently registered students.
	RecentStudents(ctx context.Context, limit int) ([]*entity.User, error)
}
