package repository

import (
	"context"

	"cardportal/internal/domain/entity"

	"github.com/google/uuid"
)

// AuditRepository stores the admin action trail.
type AuditRepository interface {
	Record(ctx context.Context, entry *entity.AuditEntry) error

	// ListByStudent returns entries for a student, newest first.
	ListByStudent(ctx context.Context, studentID uuid.UUID, limit int) ([]*entity.AuditEntry, error)
}
