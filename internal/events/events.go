// internal/events/events.go

// Package events publishes order lifecycle events to a topic exchange.
// Publishing is best effort: a failed publish is logged and never fails the
// command that produced the event.
package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	OrderCreated   = "order.created"
	OrderCancelled = "order.cancelled"
	OrderShipped   = "order.shipped"
	OrderDelivered = "order.delivered"
	OrderPaid      = "order.paid"
)

type OrderEvent struct {
	Type        string          `json:"type"`
	OrderID     uuid.UUID       `json:"order_id"`
	UserID      uuid.UUID       `json:"user_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

type Publisher interface {
	PublishOrderEvent(event OrderEvent)
	Close() error
}
