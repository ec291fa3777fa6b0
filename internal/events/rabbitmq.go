// internal/events/rabbitmq.go
package events

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

const exchangeName = "sooq.orders"

type RabbitMQPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewRabbitMQPublisher(url string) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := channel.ExchangeDeclare(
		exchangeName,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &RabbitMQPublisher{conn: conn, channel: channel}, nil
}

func (p *RabbitMQPublisher) PublishOrderEvent(event OrderEvent) {
	body, err := json.Marshal(event)
	if err != nil {
		logrus.WithError(err).Warn("Failed to marshal order event")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = p.channel.PublishWithContext(ctx,
		exchangeName,
		event.Type, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"type":     event.Type,
			"order_id": event.OrderID,
		}).Warn("Failed to publish order event")
		return
	}

	logrus.WithFields(logrus.Fields{
		"type":     event.Type,
		"order_id": event.OrderID,
	}).Debug("Order event published")
}

func (p *RabbitMQPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NoopPublisher is used when AMQP is not configured; events go to the log.
type NoopPublisher struct{}

func (NoopPublisher) PublishOrderEvent(event OrderEvent) {
	logrus.WithFields(logrus.Fields{
		"type":     event.Type,
		"order_id": event.OrderID,
	}).Debug("Order event (publisher disabled)")
}

func (NoopPublisher) Close() error { return nil }
