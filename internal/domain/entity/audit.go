package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction names an admin action recorded in the audit trail.
type AuditAction string

const (
	AuditApprove    AuditAction = "approve"
	AuditReject     AuditAction = "reject"
	AuditActivate   AuditAction = "activate"
	AuditDeactivate AuditAction = "deactivate"
	AuditRemove     AuditAction = "remove"
)

// AuditEntry records who changed which student and how.
type AuditEntry struct {
	ID        uuid.UUID
	ActorID   uuid.UUID
	StudentID uuid.UUID
	Action    AuditAction
	OldValue  map[string]any
	NewValue  map[string]any
	Note      string
	CreatedAt time.Time
}
