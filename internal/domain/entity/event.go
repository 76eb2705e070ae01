package entity

import (
	"time"

	"github.com/google/uuid"
)

// StudentEventType identifies a lifecycle change published to subscribers.
type StudentEventType string

const (
	EventStudentApproved    StudentEventType = "student.approved"
	EventStudentRejected    StudentEventType = "student.rejected"
	EventStudentDeactivated StudentEventType = "student.deactivated"
	EventStudentActivated   StudentEventType = "student.activated"
	EventStudentRemoved     StudentEventType = "student.removed"
)

// StudentEvent is published after a lifecycle transition commits.
type StudentEvent struct {
	Type       StudentEventType `json:"type"`
	StudentID  uuid.UUID        `json:"student_id"`
	ActorID    uuid.UUID        `json:"actor_id"`
	CardNumber string           `json:"card_number,omitempty"`
	Reason     string           `json:"reason,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}
