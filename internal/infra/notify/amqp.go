package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"stock-ledger/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

const ExchangeType = "topic"

// AMQPChannel is the subset of *amqp.Channel used for publishing.
type AMQPChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type AMQPNotifier struct {
	ch       AMQPChannel
	exchange string
}

func NewAMQPNotifier(ch AMQPChannel, exchange string) *AMQPNotifier {
	return &AMQPNotifier{ch: ch, exchange: exchange}
}

// RoutingKey follows stock.<product>.<location> so consumers can bind
// with patterns such as stock.*.warehouse-1.
func RoutingKey(event shared.StockChanged) string {
	return fmt.Sprintf("stock.%s.%s", event.ProductID, event.LocationID)
}

func (n *AMQPNotifier) Publish(ctx context.Context, event shared.StockChanged) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not marshal stock event: %w", err)
	}

	return n.ch.PublishWithContext(ctx,
		n.exchange,        // exchange
		RoutingKey(event), // routing key
		false,             // mandatory
		false,             // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
			Body:         body,
		},
	)
}

// SetupConn dials the broker and declares the topic exchange.
func SetupConn(url, exchange string, logger *slog.Logger) (*amqp.Connection, *amqp.Channel, error) {
	var conn *amqp.Connection
	var err error

	// Simple retry logic for broker startup
	for i := 0; i < 5; i++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			break
		}
		logger.Warn("failed to connect to RabbitMQ", "attempt", i+1, "error", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("could not open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange,     // name
		ExchangeType, // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, fmt.Errorf("could not declare exchange: %w", err)
	}

	return conn, ch, nil
}
