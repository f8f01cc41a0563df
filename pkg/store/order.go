package store

import (
	"sync"
	"time"

	"github.com/example/storefront/pkg/ident"
	"github.com/example/storefront/pkg/models"
)

// Orders holds submitted orders in creation order.
type Orders struct {
	mu     sync.Mutex
	ids    ident.Generator
	orders []*models.Order
	index  map[string]*models.Order
}

// NewOrders builds an empty order store using ids for new orders.
func NewOrders(ids ident.Generator) *Orders {
	return &Orders{
		ids:   ids,
		index: make(map[string]*models.Order),
	}
}

// Create stores an order snapshot for userID. The status is always
// pending regardless of what the caller intended; items, total,
// address and payment method are stored verbatim.
func (o *Orders) Create(userID string, data models.OrderData) models.Order {
	now := time.Now()
	order := &models.Order{
		ID:              o.ids.NewID(),
		UserID:          userID,
		Items:           data.Items,
		TotalAmount:     data.TotalAmount,
		ShippingAddress: data.ShippingAddress,
		PaymentMethod:   data.PaymentMethod,
		Status:          models.OrderStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.orders = append(o.orders, order)
	o.index[order.ID] = order
	return *order
}

// ListByUser returns the user's orders in store order.
func (o *Orders) ListByUser(userID string) []models.Order {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := []models.Order{}
	for _, ord := range o.orders {
		if ord.UserID == userID {
			out = append(out, *ord)
		}
	}
	return out
}

// ListAll returns every order; administrative view.
func (o *Orders) ListAll() []models.Order {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]models.Order, len(o.orders))
	for i, ord := range o.orders {
		out[i] = *ord
	}
	return out
}

// GetForUser returns the order only when it belongs to userID.
func (o *Orders) GetForUser(userID, orderID string) (models.Order, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	ord, ok := o.index[orderID]
	if !ok || ord.UserID != userID {
		return models.Order{}, false
	}
	return *ord, true
}

// UpdateStatus sets the order's status and refreshes UpdatedAt. The
// store accepts any value; membership in the fixed status set is
// checked by the caller. Returns false when the order is unknown.
func (o *Orders) UpdateStatus(orderID, status string) (models.Order, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	ord, ok := o.index[orderID]
	if !ok {
		return models.Order{}, false
	}
	ord.Status = status
	ord.UpdatedAt = time.Now()
	return *ord, true
}
