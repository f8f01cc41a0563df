package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProductsPaginationAndSort(t *testing.T) {
	srv, st := newTestServer(t)
	addTestProduct(st, "Cheap", "5.00", 10)
	addTestProduct(st, "Mid", "20.00", 10)
	addTestProduct(st, "Pricey", "100.00", 10)
	addTestProduct(st, "Premium", "250.00", 10)
	addTestProduct(st, "Luxury", "999.00", 10)

	w := doRequest(t, srv, http.MethodGet, "/api/products?sortBy=price&sortOrder=asc&page=2&limit=2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := dataField(t, w)
	products := data["products"].([]any)
	require.Len(t, products, 2)
	assert.Equal(t, "Pricey", products[0].(map[string]any)["name"])
	assert.Equal(t, "Premium", products[1].(map[string]any)["name"])

	pagination := data["pagination"].(map[string]any)
	assert.Equal(t, float64(2), pagination["currentPage"])
	assert.Equal(t, float64(3), pagination["totalPages"])
	assert.Equal(t, float64(5), pagination["totalProducts"])
	assert.Equal(t, true, pagination["hasNextPage"])
	assert.Equal(t, true, pagination["hasPrevPage"])
}

func TestListProductsPriceFilter(t *testing.T) {
	srv, st := newTestServer(t)
	addTestProduct(st, "Cheap", "5.00", 10)
	addTestProduct(st, "Mid", "20.00", 10)
	addTestProduct(st, "Pricey", "100.00", 10)

	w := doRequest(t, srv, http.MethodGet, "/api/products?minPrice=5&maxPrice=20", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := dataField(t, w)
	products := data["products"].([]any)
	require.Len(t, products, 2)

	priceRange := data["filters"].(map[string]any)["priceRange"].(map[string]any)
	assert.Equal(t, "5", priceRange["min"])
	assert.Equal(t, "20", priceRange["max"])
}

func TestGetProduct(t *testing.T) {
	srv, st := newTestServer(t)
	p := addTestProduct(st, "Widget", "9.99", 3)

	w := doRequest(t, srv, http.MethodGet, "/api/products/"+p.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	product := dataField(t, w)["product"].(map[string]any)
	assert.Equal(t, "Widget", product["name"])

	w = doRequest(t, srv, http.MethodGet, "/api/products/missing", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductAdminCRUD(t *testing.T) {
	srv, _ := newTestServer(t)

	// Non-admin cannot create.
	w := doRequest(t, srv, http.MethodPost, "/api/products", userToken, map[string]any{"name": "X"})
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, srv, http.MethodPost, "/api/products", adminToken, map[string]any{
		"name":     "Widget",
		"price":    9.99,
		"category": "Gadgets",
		"stock":    3,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	product := dataField(t, w)["product"].(map[string]any)
	id := product["id"].(string)
	assert.Equal(t, float64(0), product["rating"])

	w = doRequest(t, srv, http.MethodPut, "/api/products/"+id, adminToken, map[string]any{"stock": 7})
	require.Equal(t, http.StatusOK, w.Code)
	updated := dataField(t, w)["product"].(map[string]any)
	assert.Equal(t, float64(7), updated["stock"])
	assert.Equal(t, "Widget", updated["name"])

	w = doRequest(t, srv, http.MethodDelete, "/api/products/"+id, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, srv, http.MethodDelete, "/api/products/"+id, adminToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchSuggestions(t *testing.T) {
	srv, st := newTestServer(t)
	addTestProduct(st, "Desk Lamp", "10.00", 5)
	addTestProduct(st, "Lampshade", "5.00", 5)

	w := doRequest(t, srv, http.MethodGet, "/api/products/search/suggestions?q=lamp", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	suggestions := dataField(t, w)["suggestions"].([]any)
	assert.Len(t, suggestions, 2)

	// Queries shorter than two characters return nothing.
	w = doRequest(t, srv, http.MethodGet, "/api/products/search/suggestions?q=l", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, dataField(t, w)["suggestions"])
}

func TestListCategories(t *testing.T) {
	srv, st := newTestServer(t)
	addTestProduct(st, "A", "1.00", 1)

	w := doRequest(t, srv, http.MethodGet, "/api/products/categories", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	categories := dataField(t, w)["categories"].([]any)
	assert.Equal(t, []any{"Test"}, categories)
}
