// Package kafkapub publishes order lifecycle events to a Kafka topic.
package kafkapub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/core/ports"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// StatusChangedMessage is the JSON value of one published event. The message key is the
// order id, so all events of an order land in one partition in order.
type StatusChangedMessage struct {
	OrderID    string    `json:"orderId"`
	CustomerID string    `json:"customerId"`
	HostID     *string   `json:"hostId,omitempty"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	OccurredAt time.Time `json:"occurredAt"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Publisher struct {
	writer messageWriter
	logger *zap.Logger
}

var _ ports.EventPublisher = (*Publisher)(nil)

func NewPublisher(brokers []string, topic string, batchTimeout time.Duration, logger *zap.Logger) *Publisher {
	return newPublisher(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           batchTimeout,
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}, logger)
}

func newPublisher(writer messageWriter, logger *zap.Logger) *Publisher {
	return &Publisher{
		writer: writer,
		logger: logger.With(zap.String("component", "kafka_publisher")),
	}
}

func (p *Publisher) Publish(ctx context.Context, events []order.StatusChanged) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		value, err := json.Marshal(toMessage(e))
		if err != nil {
			return fmt.Errorf("marshal event for order %s: %w", e.OrderID, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(e.OrderID.String()),
			Value: value,
			Time:  e.OccurredAt,
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d order events: %w", len(msgs), err)
	}

	p.logger.Debug("order events published", zap.Int("events", len(msgs)))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func toMessage(e order.StatusChanged) StatusChangedMessage {
	var hostID *string
	if e.HostID != nil {
		id := e.HostID.String()
		hostID = &id
	}

	return StatusChangedMessage{
		OrderID:    e.OrderID.String(),
		CustomerID: e.CustomerID.String(),
		HostID:     hostID,
		From:       e.From.String(),
		To:         e.To.String(),
		OccurredAt: e.OccurredAt,
	}
}
