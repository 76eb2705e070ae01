package pubsub

import (
	"context"
	"crypto/tls"
	"log/slog"
	"time"

	"cardportal/config"
	"cardportal/internal/domain/entity"
	"cardportal/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const defaultKafkaWriteTimeout = 10 * time.Second

// messageWriter is the subset of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaPublisher implements EventPublisher on a synchronous kafka.Writer.
type kafkaPublisher struct {
	writer messageWriter
	logger *slog.Logger
}

// NewKafkaPublisher builds a writer keyed by student ID, so one student's
// events land on one partition in order.
func NewKafkaPublisher(cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if len(cfg.Brokers) == 0 || cfg.TopicID == "" {
		return nil, errors.New("brokers and topic ID are required for kafka provider")
	}

	timeout := cfg.WriteTimeout
	if timeout <= 0 {
		timeout = defaultKafkaWriteTimeout
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.TopicID,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		WriteTimeout: timeout,
	}
	if cfg.Username != "" {
		writer.Transport = &kafka.Transport{
			SASL: plain.Mechanism{Username: cfg.Username, Password: cfg.Password},
			TLS:  &tls.Config{MinVersion: tls.VersionTLS12},
		}
	}

	return &kafkaPublisher{writer: writer, logger: logger}, nil
}

func (p *kafkaPublisher) PublishStudentEvent(ctx context.Context, event *entity.StudentEvent) error {
	encoded, err := encodeEvent(ctx, event)
	if err != nil {
		return err
	}

	headers := make([]kafka.Header, 0, len(encoded.Attributes))
	for k, v := range encoded.Attributes {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(encoded.Key),
		Value:   encoded.Data,
		Headers: headers,
		Time:    event.OccurredAt,
	})
	if err != nil {
		return errors.Wrap(err, "kafka write")
	}

	p.logger.DebugContext(ctx, "[Kafka] Event published", slog.String("event_type", string(event.Type)))

	return nil
}

func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.writer.Close())
}
