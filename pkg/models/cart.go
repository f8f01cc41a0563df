package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is a raw cart line. AddedAt is set when the line is first
// created and is not refreshed by quantity changes.
type CartItem struct {
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
}

// ProductSnapshot is the denormalized product view embedded in priced
// cart lines and order items.
type ProductSnapshot struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image,omitempty"`
}

// CartLine is a cart item joined with its product at pricing time.
type CartLine struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	AddedAt   time.Time       `json:"addedAt"`
	Product   ProductSnapshot `json:"product"`
}

// CartSummary is the priced view of a cart.
type CartSummary struct {
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Items      []CartLine      `json:"items"`
}
