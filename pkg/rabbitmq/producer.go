package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/finovabank/direct_debit_engine/internal/core/domain"
)

const movementCreatedRoutingKey = "movement.created"

// EventProducer publishes engine events to a durable RabbitMQ topic exchange.
type EventProducer struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// NewEventProducer connects to RabbitMQ and declares the exchange.
// A bounded dial timeout keeps startup from hanging indefinitely.
func NewEventProducer(amqpURL, exchange string) (*EventProducer, error) {
	conn, err := amqp.DialConfig(amqpURL, amqp.Config{Dial: amqp.DefaultDial(10 * time.Second)})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // autoDelete
		false,    // internal
		false,    // noWait
		nil,      // args
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %q: %w", exchange, err)
	}

	return &EventProducer{conn: conn, channel: ch, exchange: exchange}, nil
}

// PublishMovementCreated emits one event per appended ledger movement.
func (p *EventProducer) PublishMovementCreated(ctx context.Context, movement domain.Movement) error {
	body, err := json.Marshal(movement)
	if err != nil {
		return fmt.Errorf("failed to marshal movement %s: %w", movement.MovementID, err)
	}

	return p.channel.PublishWithContext(ctx,
		p.exchange,
		movementCreatedRoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    movement.MovementID,
			Timestamp:    movement.CreatedAt,
			Body:         body,
		},
	)
}

// Close releases the channel and connection.
func (p *EventProducer) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
