package service

import (
	"context"

	"cardportal/internal/domain/entity"
)

// EventPublisher fans lifecycle events out to other systems.
// Publishing happens after commit; failures never undo a transition.
type EventPublisher interface {
	PublishStudentEvent(ctx context.Context, event *entity.StudentEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
