package pubsub

import (
	"context"
	"encoding/json"

	deliverycontext "cardportal/internal/delivery/context"
	"cardportal/internal/domain/entity"

	"github.com/pkg/errors"
)

// Provider names accepted in pubsub.provider.
const (
	ProviderNoop   = "noop"
	ProviderLocal  = "local"
	ProviderGoogle = "google"
	ProviderKafka  = "kafka"
)

// encodedEvent is the transport-neutral form of a StudentEvent: the JSON
// body, a partition/ordering key and routing attributes.
type encodedEvent struct {
	Key        string
	Data       []byte
	Attributes map[string]string
}

func encodeEvent(ctx context.Context, event *entity.StudentEvent) (*encodedEvent, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		"event_type": string(event.Type),
		"student_id": event.StudentID.String(),
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		attributes["request_id"] = requestID
	}

	return &encodedEvent{
		Key:        event.StudentID.String(),
		Data:       data,
		Attributes: attributes,
	}, nil
}
