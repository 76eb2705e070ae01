package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLogModel mirrors 'admin_audit_logs'.
type AuditLogModel struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey"`
	ActorID   uuid.UUID         `gorm:"type:uuid;not null;index"`
	StudentID uuid.UUID         `gorm:"type:uuid;not null;index:idx_admin_audit_logs_student_created,priority:1"`
	Action    string            `gorm:"type:varchar(32);not null"`
	OldValue  datatypes.JSONMap `gorm:"type:jsonb"`
	NewValue  datatypes.JSONMap `gorm:"type:jsonb"`
	Note      string            `gorm:"type:text"`
	CreatedAt time.Time         `gorm:"index:idx_admin_audit_logs_student_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (AuditLogModel) TableName() string {
	return "admin_audit_logs"
}

// All lists every model for schema migration, parents first.
func All() []any {
	return []any{
		&UserModel{},
		&StudentProfileModel{},
		&CardSequenceModel{},
		&AuditLogModel{},
	}
}
