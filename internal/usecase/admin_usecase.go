package usecase

import (
	"context"

	"cardportal/internal/domain/entity"
	"cardportal/internal/domain/repository"

	"github.com/google/uuid"
)

// Pagination bounds for student listings.
const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
	RecentLimit      = 5
)

// ListStudentsInput filters and pages the student listing.
type ListStudentsInput struct {
	Page       int
	Limit      int
	Status     entity.ApprovalStatus
	Department entity.Department
	Search     string
}

// Normalize clamps paging to its bounds.
func (in *ListStudentsInput) Normalize() {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 {
		in.Limit = DefaultPageLimit
	}
	if in.Limit > MaxPageLimit {
		in.Limit = MaxPageLimit
	}
}

// StudentPage is one page of students plus the total match count.
type StudentPage struct {
	Students   []*entity.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// AdminStats is the admin dashboard aggregate.
type AdminStats struct {
	repository.StudentStats
	Recent []*entity.User
}

// StudentDetail is a student with its audit trail.
type StudentDetail struct {
	Student *entity.User
	History []*entity.AuditEntry
}

// AdminUsecase is the review surface. adminID is the acting admin and is
// recorded on every write.
type AdminUsecase interface {
	ListStudents(ctx context.Context, input ListStudentsInput) (*StudentPage, error)

	// PendingRequests lists submitted profiles still awaiting review.
	PendingRequests(ctx context.Context, input ListStudentsInput) (*StudentPage, error)

	GetStudent(ctx context.Context, studentID uuid.UUID) (*StudentDetail, error)
	GetStudentPhoto(ctx context.Context, studentID uuid.UUID) (*PhotoContent, error)

	Approve(ctx context.Context, adminID, studentID uuid.UUID) (*entity.User, error)
	Reject(ctx context.Context, adminID, studentID uuid.UUID, reason string) (*entity.User, error)
	SetActive(ctx context.Context, adminID, studentID uuid.UUID, active bool) (*entity.User, error)

	// Remove tombstones the student. The record is kept.
	Remove(ctx context.Context, adminID, studentID uuid.UUID) (*entity.User, error)

	Stats(ctx context.Context) (*AdminStats, error)
}
