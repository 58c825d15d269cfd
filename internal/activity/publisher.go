package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/fitstats/internal/telemetry/tracing"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel/attribute"
)

const EventTypeActivityLogged = "activity.logged"

type Event struct {
	Type       string    `json:"type"`
	Activity   *Activity `json:"activity"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher announces newly logged activities to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, activity *Activity) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer messageWriter
	topic  string
	now    func() time.Time
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return newKafkaPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		Compression:            kafka.Snappy,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
		Async:                  false,
	}, topic)
}

func newKafkaPublisher(writer messageWriter, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: writer,
		topic:  topic,
		now:    time.Now,
	}
}

// Publish writes the activity.logged event keyed by user id, so events of
// one user keep their order within a partition.
func (p *KafkaPublisher) Publish(ctx context.Context, activity *Activity) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "publisher.activity.publish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("topic", p.topic))

	now := p.now().UTC()
	payload, err := json.Marshal(Event{
		Type:       EventTypeActivityLogged,
		Activity:   activity,
		OccurredAt: now,
	})
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(activity.UserID),
		Value: payload,
		Time:  now,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(EventTypeActivityLogged)},
		},
	}); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, *Activity) error { return nil }
func (NopPublisher) Close() error                             { return nil }
