package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// orderTransitions holds the allowed status transitions. completed and
// cancelled are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusCompleted, OrderStatusCancelled},
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed from s.
func (s OrderStatus) Terminal() bool {
	return len(orderTransitions[s]) == 0
}

// CanTransitionTo reports whether an order in status s may move to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderItem is a single order line. Unlike a CartItem it stores the unit
// price captured at checkout time, so later catalog price changes never
// alter historical orders.
type OrderItem struct {
	ID        string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string          `json:"order_id" gorm:"index;type:varchar(36)"`
	Kind      ItemKind        `json:"kind" gorm:"type:varchar(10)"`
	EntityID  string          `json:"entity_id" gorm:"type:varchar(36)"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2)"` // Price at the time of order
	CreatedAt time.Time       `json:"created_at"`
}

// Subtotal returns the snapshotted unit price times quantity.
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is an immutable record created from a cart at checkout. Only the
// status may change after creation.
type Order struct {
	ID       string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID   string          `json:"user_id" gorm:"index;type:varchar(36)"`
	Subtotal decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2)"`
	Tax      decimal.Decimal `json:"tax" gorm:"type:decimal(10,2)"`
	Total    decimal.Decimal `json:"total" gorm:"type:decimal(10,2)"`
	Status   OrderStatus     `json:"status" gorm:"type:varchar(20)"`

	DeliveryAddress string `json:"delivery_address,omitempty"`
	ContactPhone    string `json:"contact_phone,omitempty" gorm:"type:varchar(20)"`
	Notes           string `json:"notes,omitempty"`

	Items []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	gorm.Model
}

// HasProducts reports whether the order includes physical product lines.
func (o *Order) HasProducts() bool {
	for _, item := range o.Items {
		if item.Kind == ItemKindProduct {
			return true
		}
	}
	return false
}

// HasServices reports whether the order includes service lines.
func (o *Order) HasServices() bool {
	for _, item := range o.Items {
		if item.Kind == ItemKindService {
			return true
		}
	}
	return false
}
