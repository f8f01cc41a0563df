package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. Any status in the set may follow any other; there is
// no forward-only state machine.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderStatuses lists every valid order status.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// ValidOrderStatus reports whether s is a member of the fixed status set.
func ValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Order is a snapshot of a priced cart at checkout time. Items and
// TotalAmount are frozen at creation; later catalog changes never
// affect them. Only Status and UpdatedAt change afterwards.
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	Items           []CartLine      `json:"items"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	ShippingAddress string          `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// OrderData is what checkout hands to the order store. Status is
// ignored on create; new orders always start out pending.
type OrderData struct {
	Items           []CartLine
	TotalAmount     decimal.Decimal
	ShippingAddress string
	PaymentMethod   string
}
