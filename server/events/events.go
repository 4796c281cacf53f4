package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Daskott/coastal-alert/server/logger"
	"github.com/Daskott/coastal-alert/server/metrics"
	"github.com/Daskott/coastal-alert/shared"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const PUBLISH_TIMEOUT = 5 * time.Second

var ErrPublisherClosed = errors.New("publisher is closed")

var logg = logger.NewLogger()

// AlertEvent describes one evaluated reading.
type AlertEvent struct {
	ID                string    `json:"id"`
	LogID             uint      `json:"log_id"`
	Metric            string    `json:"metric"`
	Value             float64   `json:"value"`
	Threshold         float64   `json:"threshold"`
	Severity          string    `json:"severity"`
	Alert             bool      `json:"alert"`
	Location          string    `json:"location,omitempty"`
	SentTo            int       `json:"sent_to"`
	NotificationsSent int       `json:"notifications_sent"`
	EvaluatedAt       time.Time `json:"evaluated_at"`
}

type Publisher interface {
	Publish(ctx context.Context, event AlertEvent) error
	Close() error
}

// NewPublisher returns a kafka publisher when brokers are configured, and a
// publisher that drops every event otherwise.
func NewPublisher(config shared.KafkaConfig) Publisher {
	if len(config.Brokers) == 0 {
		return NoopPublisher{}
	}

	if config.Topic == "" {
		config.Topic = shared.DEFAULT_KAFKA_TOPIC
	}

	logg.Infof("Publishing alert events to kafka topic '%v'", config.Topic)
	return NewKafkaPublisher(&kafka.Writer{
		Addr:         kafka.TCP(config.Brokers...),
		Topic:        config.Topic,
		Balancer:     &kafka.Hash{},
		BatchSize:    1,
		WriteTimeout: PUBLISH_TIMEOUT,
		RequiredAcks: kafka.RequireOne,
	})
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event AlertEvent) error { return nil }
func (NoopPublisher) Close() error                                        { return nil }

// messageWriter is the part of *kafka.Writer used by KafkaPublisher.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer messageWriter
	closed bool
}

func NewKafkaPublisher(writer messageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// Publish writes event keyed by metric, so readings of one metric stay ordered.
func (p *KafkaPublisher) Publish(ctx context.Context, event AlertEvent) error {
	if p.closed {
		return ErrPublisherClosed
	}

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.EvaluatedAt.IsZero() {
		event.EvaluatedAt = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to serialize alert event: %v", err)
	}

	ctx, cancel := context.WithTimeout(ctx, PUBLISH_TIMEOUT)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Metric),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(event.ID)},
			{Key: "severity", Value: []byte(event.Severity)},
		},
		Time: event.EvaluatedAt,
	})
	if err != nil {
		metrics.EventsPublishedTotal.WithLabelValues("failed").Inc()
		return fmt.Errorf("failed to publish alert event: %v", err)
	}

	metrics.EventsPublishedTotal.WithLabelValues("published").Inc()
	return nil
}

func (p *KafkaPublisher) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	return p.writer.Close()
}
