package store

import (
	"testing"

	"github.com/example/storefront/pkg/ident"
	"github.com/example/storefront/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog() *Catalog {
	return NewCatalog(&ident.Sequence{Prefix: "p"})
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func pricePtr(s string) *decimal.Decimal {
	d := price(s)
	return &d
}

func TestCatalogCreateAndGet(t *testing.T) {
	c := newTestCatalog()

	created := c.Create(models.ProductInput{
		Name:        "Widget",
		Description: "A fine widget",
		Price:       price("9.99"),
		Category:    "Gadgets",
		Stock:       3,
	})

	require.Equal(t, "p-1", created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	assert.Zero(t, created.Rating)
	assert.Zero(t, created.Reviews)

	got, found := c.Get(created.ID)
	require.True(t, found)
	assert.Equal(t, created, got)

	_, found = c.Get("missing")
	assert.False(t, found)
}

func TestCatalogSearchNoFilterReturnsAllInOrder(t *testing.T) {
	c := newTestCatalog()
	c.Create(models.ProductInput{Name: "Alpha", Price: price("10"), Category: "A"})
	c.Create(models.ProductInput{Name: "Beta", Price: price("20"), Category: "B"})
	c.Create(models.ProductInput{Name: "Gamma", Price: price("30"), Category: "A"})

	got := c.Search(SearchFilter{})
	require.Len(t, got, 3)
	assert.Equal(t, "Alpha", got[0].Name)
	assert.Equal(t, "Beta", got[1].Name)
	assert.Equal(t, "Gamma", got[2].Name)
}

func TestCatalogSearchFilters(t *testing.T) {
	c := newTestCatalog()
	c.Create(models.ProductInput{Name: "Noise Cancelling Headphones", Description: "wireless audio", Price: price("349.99"), Category: "Electronics"})
	c.Create(models.ProductInput{Name: "Desk Lamp", Description: "bright LED light", Price: price("79.99"), Category: "Electronics"})
	c.Create(models.ProductInput{Name: "Wool Sweater", Description: "warm knit", Price: price("120.00"), Category: "Clothing"})

	t.Run("query matches name or description case-insensitively", func(t *testing.T) {
		byName := c.Search(SearchFilter{Query: "HEADPHONES"})
		require.Len(t, byName, 1)
		assert.Equal(t, "Noise Cancelling Headphones", byName[0].Name)

		byDescription := c.Search(SearchFilter{Query: "led"})
		require.Len(t, byDescription, 1)
		assert.Equal(t, "Desk Lamp", byDescription[0].Name)
	})

	t.Run("category matches exactly, case-insensitively", func(t *testing.T) {
		got := c.Search(SearchFilter{Category: "electronics"})
		assert.Len(t, got, 2)

		assert.Empty(t, c.Search(SearchFilter{Category: "electro"}))
	})

	t.Run("category all means no constraint", func(t *testing.T) {
		assert.Len(t, c.Search(SearchFilter{Category: "all"}), 3)
	})

	t.Run("price bounds are inclusive", func(t *testing.T) {
		got := c.Search(SearchFilter{MinPrice: pricePtr("79.99"), MaxPrice: pricePtr("120.00")})
		require.Len(t, got, 2)
		assert.Equal(t, "Desk Lamp", got[0].Name)
		assert.Equal(t, "Wool Sweater", got[1].Name)
	})

	t.Run("filters compose with AND", func(t *testing.T) {
		got := c.Search(SearchFilter{Query: "l", Category: "Electronics", MinPrice: pricePtr("100")})
		require.Len(t, got, 1)
		assert.Equal(t, "Noise Cancelling Headphones", got[0].Name)
	})
}

func TestCatalogUpdateShallowMerge(t *testing.T) {
	c := newTestCatalog()
	created := c.Create(models.ProductInput{Name: "Widget", Price: price("9.99"), Category: "Gadgets", Stock: 3})

	newStock := 10
	updated, found := c.Update(created.ID, models.ProductPatch{Stock: &newStock})
	require.True(t, found)
	assert.Equal(t, 10, updated.Stock)
	assert.Equal(t, "Widget", updated.Name)
	assert.True(t, updated.Price.Equal(price("9.99")))
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	_, found = c.Update("missing", models.ProductPatch{Stock: &newStock})
	assert.False(t, found)
}

func TestCatalogDelete(t *testing.T) {
	c := newTestCatalog()
	created := c.Create(models.ProductInput{Name: "Widget", Price: price("9.99")})

	removed, found := c.Delete(created.ID)
	require.True(t, found)
	assert.Equal(t, created.ID, removed.ID)

	_, found = c.Get(created.ID)
	assert.False(t, found)

	_, found = c.Delete(created.ID)
	assert.False(t, found)
	assert.Empty(t, c.Search(SearchFilter{}))
}

func TestCatalogCategoriesSortedDistinct(t *testing.T) {
	c := newTestCatalog()
	c.Create(models.ProductInput{Name: "a", Category: "Electronics"})
	c.Create(models.ProductInput{Name: "b", Category: "Clothing"})
	c.Create(models.ProductInput{Name: "c", Category: "Electronics"})
	c.Create(models.ProductInput{Name: "d", Category: "Accessories"})

	assert.Equal(t, []string{"Accessories", "Clothing", "Electronics"}, c.Categories())
}

func TestCatalogSuggestions(t *testing.T) {
	c := newTestCatalog()
	c.Create(models.ProductInput{Name: "Desk Lamp", Category: "Electronics"})
	c.Create(models.ProductInput{Name: "Sweater", Category: "Clothing"})
	c.Create(models.ProductInput{Name: "Lampshade", Category: "Home"})

	got := c.Suggestions("lamp", 5)
	require.Len(t, got, 2)
	assert.Equal(t, "Desk Lamp", got[0].Name)
	assert.Equal(t, "Lampshade", got[1].Name)

	assert.Len(t, c.Suggestions("a", 2), 2)
}
