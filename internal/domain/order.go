package domain

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

// OrderStatus — состояние заказа. Допустимы только pending и confirmed.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
)

var (
	ErrUnknownOrderStatus = errors.New("unknown order status")
	ErrTotalOutOfRange    = errors.New("order total out of range")
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if !status.Valid() {
		return "", ErrUnknownOrderStatus
	}
	return status, nil
}

func (s OrderStatus) Valid() bool {
	return s == OrderStatusPending || s == OrderStatusConfirmed
}

func (s OrderStatus) String() string {
	return string(s)
}

// Order — заказ покупателя. TotalAmount всегда равна сумме позиций.
type Order struct {
	ID               uuid.UUID
	CustomerName     string
	CustomerPhone    string
	DeliveryLocation string
	TotalAmount      int64
	Status           OrderStatus
	CreatedAt        time.Time
	UpdatedAt        *time.Time
	Items            []OrderItem
}

// OrderItem — позиция заказа с ценой, зафиксированной при оформлении.
// ProductID обнуляется, если товар удалён из каталога; ProductName остаётся.
type OrderItem struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   *uuid.UUID
	ProductName string
	Quantity    int
	Price       int64
	Product     *ProductSummary
}

func (i OrderItem) LineTotal() int64 {
	return i.Price * int64(i.Quantity)
}

// NewOrder собирает новый заказ в статусе pending и считает итог по позициям.
func NewOrder(customerName, customerPhone, deliveryLocation string, items []OrderItem) *Order {
	o := &Order{
		ID:               uuid.New(),
		CustomerName:     customerName,
		CustomerPhone:    customerPhone,
		DeliveryLocation: deliveryLocation,
		Status:           OrderStatusPending,
		Items:            items,
	}
	for i := range o.Items {
		o.Items[i].OrderID = o.ID
		if o.Items[i].ID == uuid.Nil {
			o.Items[i].ID = uuid.New()
		}
	}
	o.TotalAmount = o.ItemsTotal()
	return o
}

// ItemsTotal — Σ(цена × количество) по позициям.
func (o *Order) ItemsTotal() int64 {
	var total int64
	for _, it := range o.Items {
		total += it.LineTotal()
	}
	return total
}

// SumItems считает итог с проверкой переполнения int64.
func SumItems(items []OrderItem) (int64, error) {
	var total int64
	for _, it := range items {
		if it.Price < 0 || it.Quantity < 0 {
			return 0, ErrTotalOutOfRange
		}
		if it.Quantity > 0 && it.Price > math.MaxInt64/int64(it.Quantity) {
			return 0, ErrTotalOutOfRange
		}
		line := it.LineTotal()
		if total > math.MaxInt64-line {
			return 0, ErrTotalOutOfRange
		}
		total += line
	}
	return total, nil
}

func NewOrderItem(product *Product, unitPrice int64, quantity int) OrderItem {
	id := product.ID
	return OrderItem{
		ProductID:   &id,
		ProductName: product.Name,
		Quantity:    quantity,
		Price:       unitPrice,
	}
}
