package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog record. Rating and Reviews are denormalized
// aggregates maintained by administrative updates; there is no review
// entity behind them.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          decimal.Decimal   `json:"price"`
	Category       string            `json:"category"`
	Image          string            `json:"image,omitempty"`
	Stock          int               `json:"stock"`
	Rating         float64           `json:"rating"`
	Reviews        int               `json:"reviews"`
	Brand          string            `json:"brand,omitempty"`
	Color          string            `json:"color,omitempty"`
	Weight         string            `json:"weight,omitempty"`
	Material       string            `json:"material,omitempty"`
	Features       []string          `json:"features,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// ProductInput carries the caller-supplied fields for a new product.
// Nothing here is validated as "required"; that is a concern of whoever
// accepts the input.
type ProductInput struct {
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          decimal.Decimal   `json:"price"`
	Category       string            `json:"category"`
	Image          string            `json:"image"`
	Stock          int               `json:"stock"`
	Brand          string            `json:"brand"`
	Color          string            `json:"color"`
	Weight         string            `json:"weight"`
	Material       string            `json:"material"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
}

// ProductPatch is a partial update. Nil fields are left untouched.
type ProductPatch struct {
	Name           *string            `json:"name"`
	Description    *string            `json:"description"`
	Price          *decimal.Decimal   `json:"price"`
	Category       *string            `json:"category"`
	Image          *string            `json:"image"`
	Stock          *int               `json:"stock"`
	Rating         *float64           `json:"rating"`
	Reviews        *int               `json:"reviews"`
	Brand          *string            `json:"brand"`
	Color          *string            `json:"color"`
	Weight         *string            `json:"weight"`
	Material       *string            `json:"material"`
	Features       *[]string          `json:"features"`
	Specifications *map[string]string `json:"specifications"`
}
