package store

import (
	"sync"
	"time"

	"github.com/example/storefront/pkg/models"
	"github.com/shopspring/decimal"
)

// ProductLookup is the read-only slice of the catalog the cart needs to
// resolve and price its lines.
type ProductLookup interface {
	Get(id string) (models.Product, bool)
}

// Cart holds one line-item list per user. It checks that added products
// exist, and nothing else: stock enforcement is the caller's job, so
// driving the store directly can over-commit a cart.
type Cart struct {
	mu       sync.Mutex
	products ProductLookup
	carts    map[string][]models.CartItem
}

// NewCart builds an empty cart store resolving products through lookup.
func NewCart(lookup ProductLookup) *Cart {
	return &Cart{
		products: lookup,
		carts:    make(map[string][]models.CartItem),
	}
}

// Items returns the user's raw cart lines, empty when no cart exists.
// Lines whose product has since been deleted are returned as-is; only
// Summary hides them.
func (c *Cart) Items(userID string) []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := c.carts[userID]
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out
}

// Add puts quantity of productID into the user's cart. An existing line
// accumulates; a new line is appended with AddedAt set once. Returns
// ErrProductNotFound when the product does not resolve.
func (c *Cart) Add(userID, productID string, quantity int) error {
	if _, ok := c.products.Get(productID); !ok {
		return ErrProductNotFound
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	items := c.carts[userID]
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += quantity
			c.carts[userID] = items
			return nil
		}
	}
	c.carts[userID] = append(items, models.CartItem{
		ProductID: productID,
		Quantity:  quantity,
		AddedAt:   time.Now(),
	})
	return nil
}

// UpdateQuantity replaces a line's quantity. A quantity of zero or less
// removes the line instead of storing it. Unknown lines are a no-op.
func (c *Cart) UpdateQuantity(userID, productID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := c.carts[userID]
	for i := range items {
		if items[i].ProductID != productID {
			continue
		}
		if quantity <= 0 {
			c.carts[userID] = append(items[:i], items[i+1:]...)
		} else {
			items[i].Quantity = quantity
			c.carts[userID] = items
		}
		return
	}
}

// Remove filters the line out. Removing an absent line is not an error.
func (c *Cart) Remove(userID, productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := c.carts[userID]
	filtered := items[:0]
	for _, it := range items {
		if it.ProductID != productID {
			filtered = append(filtered, it)
		}
	}
	c.carts[userID] = filtered
}

// Clear empties the user's cart.
func (c *Cart) Clear(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.carts[userID] = []models.CartItem{}
}

// Summary prices the cart by joining each line against the product
// lookup. Lines whose product no longer resolves are silently dropped
// from the items and the totals, though they stay in the raw cart.
// TotalPrice is rounded to cents.
func (c *Cart) Summary(userID string) models.CartSummary {
	items := c.Items(userID)

	summary := models.CartSummary{
		TotalPrice: decimal.Zero,
		Items:      []models.CartLine{},
	}
	for _, it := range items {
		p, ok := c.products.Get(it.ProductID)
		if !ok {
			continue
		}
		summary.TotalItems += it.Quantity
		summary.TotalPrice = summary.TotalPrice.Add(p.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		summary.Items = append(summary.Items, models.CartLine{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			AddedAt:   it.AddedAt,
			Product: models.ProductSnapshot{
				ID:    p.ID,
				Name:  p.Name,
				Price: p.Price,
				Image: p.Image,
			},
		})
	}
	summary.TotalPrice = summary.TotalPrice.Round(2)
	return summary
}
