package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/example/storefront/pkg/ident"
	"github.com/example/storefront/pkg/models"
	"github.com/shopspring/decimal"
)

// SearchFilter narrows a catalog search. Zero/nil fields mean "no
// constraint"; non-empty fields compose with logical AND.
type SearchFilter struct {
	Query    string
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// Suggestion is a lightweight hit for search-as-you-type.
type Suggestion struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Catalog holds product records in insertion order. All reads return
// copies; the records behind the index are only touched under the lock.
type Catalog struct {
	mu       sync.RWMutex
	ids      ident.Generator
	products []*models.Product
	index    map[string]*models.Product
}

// NewCatalog builds an empty catalog using ids for new records.
func NewCatalog(ids ident.Generator) *Catalog {
	return &Catalog{
		ids:   ids,
		index: make(map[string]*models.Product),
	}
}

// Get looks up a product by id.
func (c *Catalog) Get(id string) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.index[id]
	if !ok {
		return models.Product{}, false
	}
	return *p, true
}

// All returns every product in insertion order.
func (c *Catalog) All() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Product, len(c.products))
	for i, p := range c.products {
		out[i] = *p
	}
	return out
}

// Search returns products matching the filter, preserving insertion
// order. Query matches case-insensitively against name or description;
// category matches case-insensitively and exactly ("all" means no
// constraint); price bounds are inclusive.
func (c *Catalog) Search(f SearchFilter) []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	query := strings.ToLower(f.Query)
	category := strings.ToLower(f.Category)

	out := make([]models.Product, 0, len(c.products))
	for _, p := range c.products {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		if category != "" && category != "all" && strings.ToLower(p.Category) != category {
			continue
		}
		if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
			continue
		}
		if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
			continue
		}
		out = append(out, *p)
	}
	return out
}

// Create adds a product with a fresh id and timestamps. Rating and
// review aggregates always start at zero; the input is stored as given
// otherwise, with no required-field checks.
func (c *Catalog) Create(input models.ProductInput) models.Product {
	now := time.Now()
	p := &models.Product{
		ID:             c.ids.NewID(),
		Name:           input.Name,
		Description:    input.Description,
		Price:          input.Price,
		Category:       input.Category,
		Image:          input.Image,
		Stock:          input.Stock,
		Brand:          input.Brand,
		Color:          input.Color,
		Weight:         input.Weight,
		Material:       input.Material,
		Features:       input.Features,
		Specifications: input.Specifications,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = append(c.products, p)
	c.index[p.ID] = p
	return *p
}

// Update shallow-merges the patch over the existing record and
// refreshes UpdatedAt. The second return is false when id is unknown.
func (c *Catalog) Update(id string, patch models.ProductPatch) (models.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.index[id]
	if !ok {
		return models.Product{}, false
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Rating != nil {
		p.Rating = *patch.Rating
	}
	if patch.Reviews != nil {
		p.Reviews = *patch.Reviews
	}
	if patch.Brand != nil {
		p.Brand = *patch.Brand
	}
	if patch.Color != nil {
		p.Color = *patch.Color
	}
	if patch.Weight != nil {
		p.Weight = *patch.Weight
	}
	if patch.Material != nil {
		p.Material = *patch.Material
	}
	if patch.Features != nil {
		p.Features = *patch.Features
	}
	if patch.Specifications != nil {
		p.Specifications = *patch.Specifications
	}
	p.UpdatedAt = time.Now()
	return *p, true
}

// Delete removes a product outright and returns the removed record.
// Cart lines referencing it are left dangling; the cart summary drops
// them at read time.
func (c *Catalog) Delete(id string) (models.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.index[id]
	if !ok {
		return models.Product{}, false
	}
	delete(c.index, id)
	for i, cur := range c.products {
		if cur.ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			break
		}
	}
	return *p, true
}

// Categories returns the distinct category values, sorted.
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	seen := make(map[string]struct{})
	var out []string
	for _, p := range c.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}

// Suggestions returns up to limit products whose name or category
// contains q, case-insensitively.
func (c *Catalog) Suggestions(q string, limit int) []Suggestion {
	c.mu.RLock()
	defer c.mu.RUnlock()
	q = strings.ToLower(q)
	out := []Suggestion{}
	for _, p := range c.products {
		if len(out) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, Suggestion{ID: p.ID, Name: p.Name, Category: p.Category})
		}
	}
	return out
}
