package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderEventType string

const (
	OrderCreated       OrderEventType = "order.created"
	OrderStatusChanged OrderEventType = "order.status_changed"
)

// OrderEvent публикуется после фиксации изменений заказа.
type OrderEvent struct {
	EventID     uuid.UUID
	EventType   OrderEventType
	OrderID     uuid.UUID
	Status      OrderStatus
	TotalAmount int64
	OccurredAt  time.Time
}

func NewOrderEvent(eventType OrderEventType, order *Order) *OrderEvent {
	return &OrderEvent{
		EventID:     uuid.New(),
		EventType:   eventType,
		OrderID:     order.ID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		OccurredAt:  time.Now().UTC(),
	}
}
