// Package checkout converts a priced cart into an order. The flow is
// transactional in intent only: there is no lock spanning the stock
// check, the order write and the cart clear, so a concurrent catalog or
// cart mutation in between is neither prevented nor detected.
package checkout

import (
	"github.com/example/storefront/pkg/models"
	"github.com/example/storefront/pkg/store"
)

// Flow orchestrates the catalog, cart and order stores for checkout.
type Flow struct {
	catalog *store.Catalog
	cart    *store.Cart
	orders  *store.Orders
}

// New builds a checkout flow over the given store.
func New(s *store.Store) *Flow {
	return &Flow{catalog: s.Catalog, cart: s.Cart, orders: s.Orders}
}

// Place validates and submits the user's cart as an order, then clears
// the cart. Stock is validated per line against the current catalog but
// never decremented, so repeated checkouts against the same stock keep
// succeeding. On any error the cart and the order store are untouched.
func (f *Flow) Place(userID, shippingAddress, paymentMethod string) (models.Order, error) {
	if shippingAddress == "" || paymentMethod == "" {
		return models.Order{}, store.NewValidationError("shipping address and payment method are required")
	}

	summary := f.cart.Summary(userID)
	if summary.TotalItems == 0 {
		return models.Order{}, store.NewValidationError("cart is empty")
	}

	for _, line := range summary.Items {
		p, ok := f.catalog.Get(line.ProductID)
		if !ok || p.Stock < line.Quantity {
			return models.Order{}, &store.InsufficientStockError{
				ProductID:   line.ProductID,
				ProductName: line.Product.Name,
				Available:   p.Stock,
				Requested:   line.Quantity,
			}
		}
	}

	order := f.orders.Create(userID, models.OrderData{
		Items:           summary.Items,
		TotalAmount:     summary.TotalPrice,
		ShippingAddress: shippingAddress,
		PaymentMethod:   paymentMethod,
	})
	f.cart.Clear(userID)
	return order, nil
}
