package checkout

import (
	"testing"

	"github.com/example/storefront/pkg/ident"
	"github.com/example/storefront/pkg/models"
	"github.com/example/storefront/pkg/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*store.Store, *Flow) {
	t.Helper()
	s := store.New(&ident.Sequence{Prefix: "id"})
	return s, New(s)
}

func addProduct(s *store.Store, name, price string, stock int) models.Product {
	return s.Catalog.Create(models.ProductInput{
		Name:  name,
		Price: decimal.RequireFromString(price),
		Stock: stock,
	})
}

func TestPlaceRequiresShippingAndPayment(t *testing.T) {
	s, flow := setup(t)
	p := addProduct(s, "Widget", "10.00", 5)
	require.NoError(t, s.Cart.Add("u1", p.ID, 1))

	var ve *store.ValidationError

	_, err := flow.Place("u1", "", "card")
	require.ErrorAs(t, err, &ve)

	_, err = flow.Place("u1", "1 Main St", "")
	require.ErrorAs(t, err, &ve)

	// Nothing was created or cleared.
	assert.Empty(t, s.Orders.ListByUser("u1"))
	assert.Len(t, s.Cart.Items("u1"), 1)
}

func TestPlaceEmptyCart(t *testing.T) {
	s, flow := setup(t)

	_, err := flow.Place("u1", "1 Main St", "card")
	var ve *store.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "cart is empty", ve.Msg)
	assert.Empty(t, s.Orders.ListAll())
}

func TestPlaceInsufficientStock(t *testing.T) {
	s, flow := setup(t)
	p := addProduct(s, "Widget", "10.00", 5)
	require.NoError(t, s.Cart.Add("u1", p.ID, 3))

	// Stock drops below the cart quantity between add and checkout.
	lowStock := 2
	_, found := s.Catalog.Update(p.ID, models.ProductPatch{Stock: &lowStock})
	require.True(t, found)

	_, err := flow.Place("u1", "1 Main St", "card")
	var se *store.InsufficientStockError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, p.ID, se.ProductID)
	assert.Equal(t, "Widget", se.ProductName)
	assert.Equal(t, 2, se.Available)
	assert.Equal(t, 3, se.Requested)

	// Failed checkout leaves everything untouched.
	assert.Empty(t, s.Orders.ListByUser("u1"))
	assert.Len(t, s.Cart.Items("u1"), 1)
}

func TestPlaceProductDeletedAfterSummary(t *testing.T) {
	s, flow := setup(t)
	kept := addProduct(s, "Kept", "10.00", 5)
	doomed := addProduct(s, "Doomed", "5.00", 5)
	require.NoError(t, s.Cart.Add("u1", kept.ID, 1))
	require.NoError(t, s.Cart.Add("u1", doomed.ID, 1))

	_, found := s.Catalog.Delete(doomed.ID)
	require.True(t, found)

	// The deleted line vanishes from the summary, so checkout succeeds
	// with only the surviving product.
	order, err := flow.Place("u1", "1 Main St", "card")
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, kept.ID, order.Items[0].ProductID)
	assert.Equal(t, "10.00", order.TotalAmount.StringFixed(2))
}

func TestPlaceSuccess(t *testing.T) {
	s, flow := setup(t)
	a := addProduct(s, "Product A", "10.00", 10)
	b := addProduct(s, "Product B", "5.00", 10)
	require.NoError(t, s.Cart.Add("u1", a.ID, 2))
	require.NoError(t, s.Cart.Add("u1", b.ID, 1))

	order, err := flow.Place("u1", "1 Main St", "card")
	require.NoError(t, err)

	assert.Equal(t, "25.00", order.TotalAmount.StringFixed(2))
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "1 Main St", order.ShippingAddress)
	assert.Equal(t, "card", order.PaymentMethod)
	require.Len(t, order.Items, 2)

	// Cart is emptied and the order is findable.
	assert.Empty(t, s.Cart.Items("u1"))
	orders := s.Orders.ListByUser("u1")
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

// Checkout validates stock but never decrements it, so repeated
// checkouts against the same stock keep succeeding.
func TestPlaceDoesNotDecrementStock(t *testing.T) {
	s, flow := setup(t)
	p := addProduct(s, "Widget", "10.00", 3)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Cart.Add("u1", p.ID, 3))
		_, err := flow.Place("u1", "1 Main St", "card")
		require.NoError(t, err)
	}

	got, found := s.Catalog.Get(p.ID)
	require.True(t, found)
	assert.Equal(t, 3, got.Stock)
	assert.Len(t, s.Orders.ListByUser("u1"), 3)
}
