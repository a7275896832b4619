package services

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-videotube/internal/logger"
	"github.com/sbilibin2017/gw-videotube/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// EventSink receives domain events after successful writes.
type EventSink interface {
	Publish(ctx context.Context, evt models.Event)
}

// EventPublisher writes events to Kafka. A nil writer disables publishing.
type EventPublisher struct {
	writer KafkaWriter
}

func NewEventPublisher(writer KafkaWriter) *EventPublisher {
	return &EventPublisher{writer: writer}
}

// Publish never fails the caller; delivery problems are only logged.
func (p *EventPublisher) Publish(ctx context.Context, evt models.Event) {
	log := logger.FromContext(ctx)
	if p == nil || p.writer == nil {
		log.Debugw("Kafka writer not configured, skipping publishing", "event_type", evt.Type)
		return
	}

	data, err := json.Marshal(evt)
	if err != nil {
		log.Errorw("Failed to marshal event for Kafka", "event_id", evt.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(evt.ActorID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(evt.Type)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.Errorw("Failed to publish event to Kafka", "event_id", evt.EventID, "event_type", evt.Type, "error", err)
		return
	}
	log.Infow("Event published to Kafka", "event_id", evt.EventID, "event_type", evt.Type)
}

func newEvent(eventType string, actor, target primitive.ObjectID, kind string) models.Event {
	evt := models.Event{
		EventID:    uuid.NewString(),
		Type:       eventType,
		Timestamp:  time.Now().Unix(),
		ActorID:    actor.Hex(),
		TargetKind: kind,
	}
	if !target.IsZero() {
		evt.TargetID = target.Hex()
	}
	return evt
}

func toggleEvent(eventType string, actor, target primitive.ObjectID, kind string, active bool) models.Event {
	evt := newEvent(eventType, actor, target, kind)
	evt.Active = &active
	return evt
}

// publish tolerates a nil sink.
func publish(ctx context.Context, sink EventSink, evt models.Event) {
	if sink == nil {
		return
	}
	sink.Publish(ctx, evt)
}
