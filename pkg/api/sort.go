package api

import (
	"sort"
	"time"

	"github.com/example/storefront/pkg/models"
)

// sortProducts orders products by the given field, ascending unless
// order is "desc". Numeric fields compare numerically, time fields
// chronologically, everything else lexically. Ties keep their original
// relative order. Unknown keys fall back to createdAt.
func sortProducts(products []models.Product, sortBy, order string) {
	cmp := productComparator(sortBy)
	desc := order == "desc"
	sort.SliceStable(products, func(i, j int) bool {
		c := cmp(&products[i], &products[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func productComparator(sortBy string) func(a, b *models.Product) int {
	switch sortBy {
	case "price":
		return func(a, b *models.Product) int { return a.Price.Cmp(b.Price) }
	case "rating":
		return func(a, b *models.Product) int { return cmpFloat(a.Rating, b.Rating) }
	case "stock":
		return func(a, b *models.Product) int { return cmpInt(a.Stock, b.Stock) }
	case "reviews":
		return func(a, b *models.Product) int { return cmpInt(a.Reviews, b.Reviews) }
	case "name":
		return func(a, b *models.Product) int { return cmpString(a.Name, b.Name) }
	case "category":
		return func(a, b *models.Product) int { return cmpString(a.Category, b.Category) }
	case "brand":
		return func(a, b *models.Product) int { return cmpString(a.Brand, b.Brand) }
	case "id":
		return func(a, b *models.Product) int { return cmpString(a.ID, b.ID) }
	case "updatedAt":
		return func(a, b *models.Product) int { return cmpTime(a.UpdatedAt, b.UpdatedAt) }
	default: // createdAt
		return func(a, b *models.Product) int { return cmpTime(a.CreatedAt, b.CreatedAt) }
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}

// paginate slices the sorted result and derives page metadata.
func paginate(products []models.Product, page, limit int) ([]models.Product, Pagination) {
	total := len(products)
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return products[start:end], Pagination{
		CurrentPage:   page,
		TotalPages:    totalPages,
		TotalProducts: total,
		HasNextPage:   end < total,
		HasPrevPage:   page > 1,
	}
}

// Pagination is the page metadata returned with product listings.
type Pagination struct {
	CurrentPage   int  `json:"currentPage"`
	TotalPages    int  `json:"totalPages"`
	TotalProducts int  `json:"totalProducts"`
	HasNextPage   bool `json:"hasNextPage"`
	HasPrevPage   bool `json:"hasPrevPage"`
}
