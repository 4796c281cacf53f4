package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Daskott/coastal-alert/shared"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestNewPublisher(t *testing.T) {
	assert.IsType(t, NoopPublisher{}, NewPublisher(shared.KafkaConfig{}))

	publisher := NewPublisher(shared.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "coastal-alerts"})
	assert.IsType(t, &KafkaPublisher{}, publisher)
	assert.NoError(t, publisher.Close())
}

func TestKafkaPublisherPublish(t *testing.T) {
	writer := &fakeWriter{}
	publisher := NewKafkaPublisher(writer)

	err := publisher.Publish(context.Background(), AlertEvent{
		LogID:    7,
		Metric:   "water_level",
		Value:    5.5,
		Severity: "CRITICAL",
		Alert:    true,
	})
	require.NoError(t, err)
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, "water_level", string(msg.Key))

	event := AlertEvent{}
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.NotEmpty(t, event.ID)
	assert.False(t, event.EvaluatedAt.IsZero())
	assert.Equal(t, uint(7), event.LogID)
	assert.Equal(t, "CRITICAL", event.Severity)
}

func TestKafkaPublisherErrors(t *testing.T) {
	writer := &fakeWriter{err: errors.New("broker down")}
	publisher := NewKafkaPublisher(writer)

	err := publisher.Publish(context.Background(), AlertEvent{Metric: "wind_speed"})
	assert.Error(t, err)

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)

	err = publisher.Publish(context.Background(), AlertEvent{Metric: "wind_speed"})
	assert.True(t, errors.Is(err, ErrPublisherClosed))
}
