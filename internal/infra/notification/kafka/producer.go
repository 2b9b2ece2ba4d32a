// Package kafka publishes alerts to a Kafka topic for downstream consumers.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"github.com/gabapcia/whalewatch/internal/alert"
	"github.com/gabapcia/whalewatch/internal/dispatch"
)

// envelopeType tags every message published by the sink.
const envelopeType = "whale_alert"

// envelope wraps an alert with its type and event time in unix
// milliseconds. TS is omitted when the event carried no timestamp, so a
// redelivered transfer always produces the same message.
type envelope struct {
	Type string      `json:"type"`
	TS   int64       `json:"ts,omitempty"`
	Data alert.Alert `json:"data"`
}

type producer struct {
	topic string
	p     sarama.SyncProducer
}

var _ dispatch.Sink = (*producer)(nil)

// NewSyncProducer dials brokers with a configuration suited for alerts:
// every in-sync replica must acknowledge and successes are reported.
func NewSyncProducer(brokers []string, clientID string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.ClientID = clientID
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.Retry.Max = 3

	p, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return p, nil
}

// New creates a sink writing to topic through p.
func New(p sarama.SyncProducer, topic string) *producer {
	return &producer{
		topic: topic,
		p:     p,
	}
}

func (s *producer) Name() string {
	return "kafka"
}

// Deliver publishes a keyed by its event id, so every copy of the same
// transfer lands on one partition. SyncProducer does not take a context;
// cancellation is only checked before sending.
func (s *producer) Deliver(ctx context.Context, a alert.Alert) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := envelope{Type: envelopeType, Data: a}
	if !a.Timestamp.IsZero() {
		env.TS = a.Timestamp.UnixMilli()
	}

	b, err := json.Marshal(env)
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: s.topic,
		Value: sarama.ByteEncoder(b),
	}

	key := a.ID
	if key == "" {
		key = a.TxHash
	}
	if key != "" {
		msg.Key = sarama.StringEncoder(key)
	}

	if _, _, err := s.p.SendMessage(msg); err != nil {
		return fmt.Errorf("kafka publish failed: %w", err)
	}

	return nil
}

// Close shuts the underlying producer down.
func (s *producer) Close() error {
	return s.p.Close()
}
