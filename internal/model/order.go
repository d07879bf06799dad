package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus represents the status of an order.
//
// The intended progression is received → preparing → ready → out_for_delivery
// (delivery) or completed (pickup), with cancelled reachable from any
// non-terminal state. Transitions are driven by back-office tooling; this
// service only sets the creation default and reads the stored value.
type OrderStatus string

const (
	OrderStatusReceived       OrderStatus = "received"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusReady          OrderStatus = "ready"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusCompleted      OrderStatus = "completed"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// Fulfillment represents how an order reaches the customer.
type Fulfillment string

const (
	FulfillmentPickup   Fulfillment = "pickup"
	FulfillmentDelivery Fulfillment = "delivery"
)

// CartItem is a line in an order. It carries a name/price snapshot of the
// menu item at order time and is embedded in the order document rather than
// stored standalone.
type CartItem struct {
	MenuItemID string          `json:"menu_item_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	AddOns     []string        `json:"add_ons"`
	Toppings   []string        `json:"toppings"`
	SpiceLevel SpiceLevel      `json:"spice_level,omitempty"`
	Notes      string          `json:"notes,omitempty"`
}

// Order represents a placed order. The monetary totals are client-supplied
// and validated non-negative, not recomputed server-side.
type Order struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserEmail   string          `json:"user_email" gorm:"size:255;not null;index"`
	Items       []CartItem      `json:"items" gorm:"serializer:json"`
	Subtotal    decimal.Decimal `json:"subtotal" gorm:"type:decimal(20,2);not null"`
	Tax         decimal.Decimal `json:"tax" gorm:"type:decimal(20,2);not null"`
	Total       decimal.Decimal `json:"total" gorm:"type:decimal(20,2);not null"`
	Fulfillment Fulfillment     `json:"fulfillment" gorm:"type:varchar(20);not null"`
	Status      OrderStatus     `json:"status" gorm:"type:varchar(20);not null;default:'received';index"`
	Address     string          `json:"address,omitempty" gorm:"size:512"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
