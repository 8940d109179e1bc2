package notify

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/segmentio/kafka-go"

	"jobmate/placement-service/internal/lifecycle"
)

// KafkaPublisher writes notifications to a Kafka topic keyed by recipient,
// so one recipient's messages stay ordered within a partition.
type KafkaPublisher struct {
	writer *kafka.Writer
	clock  lifecycle.Clock
}

// NewKafkaPublisher returns a publisher writing to topic on brokers.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
			RequiredAcks:           kafka.RequireOne,
			MaxAttempts:            1,
			BatchTimeout:           50 * time.Millisecond,
		},
		clock: lifecycle.SystemClock,
	}
}

func (p *KafkaPublisher) Notify(ctx context.Context, n lifecycle.Notification) error {
	value, err := marshal(n, p.clock.Now())
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(n.RecipientID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(n.Type)},
			{Key: "recipientRole", Value: []byte(n.RecipientRole)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrapf(err, "write %s", p.writer.Topic)
	}
	return nil
}

// Close flushes and closes the writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
