// Package kafka publishes order lifecycle events to the message broker.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/Shopify/sarama"
)

// OrderStatusPublisher implements ports.EventPublisher on top of a sarama
// synchronous producer. Events are keyed by order ID so consumers see each
// order's transitions in commit order.
type OrderStatusPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewOrderStatusPublisher connects a synchronous producer to the given
// brokers.
func NewOrderStatusPublisher(brokers []string, topic string) (*OrderStatusPublisher, error) {
	if len(brokers) == 0 {
		return nil, errs.NewValueIsRequiredError("brokers")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}

	config := sarama.NewConfig()
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return &OrderStatusPublisher{
		producer: producer,
		topic:    topic,
	}, nil
}

// NewOrderStatusPublisherWithProducer wraps an existing producer. Used in
// tests with sarama's mock producer.
func NewOrderStatusPublisherWithProducer(
	producer sarama.SyncProducer,
	topic string,
) (*OrderStatusPublisher, error) {
	if producer == nil {
		return nil, errs.NewValueIsRequiredError("producer")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}

	return &OrderStatusPublisher{
		producer: producer,
		topic:    topic,
	}, nil
}

// PublishOrderStatus publishes a single order status change as JSON.
func (p *OrderStatusPublisher) PublishOrderStatus(
	ctx context.Context,
	event ports.OrderStatusEvent,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order status event: %w", err)
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(data),
	})
	if err != nil {
		return fmt.Errorf("send order status event: %w", err)
	}

	return nil
}

// Close releases the underlying producer.
func (p *OrderStatusPublisher) Close() error {
	return p.producer.Close()
}
