package api

import (
	"net/http"
	"strconv"

	"github.com/example/storefront/pkg/models"
	"github.com/example/storefront/pkg/store"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func (s *Server) listProducts(c *gin.Context) {
	filter := store.SearchFilter{
		Query:    c.Query("search"),
		Category: c.Query("category"),
	}
	if v, err := decimal.NewFromString(c.Query("minPrice")); err == nil {
		filter.MinPrice = &v
	}
	if v, err := decimal.NewFromString(c.Query("maxPrice")); err == nil {
		filter.MaxPrice = &v
	}

	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	sortBy := c.DefaultQuery("sortBy", "createdAt")
	sortOrder := c.DefaultQuery("sortOrder", "desc")

	products := s.store.Catalog.Search(filter)
	sortProducts(products, sortBy, sortOrder)
	pageItems, pagination := paginate(products, page, limit)

	minPrice, maxPrice := priceRange(products)

	ok(c, http.StatusOK, "", gin.H{
		"products":   pageItems,
		"pagination": pagination,
		"filters": gin.H{
			"categories": s.store.Catalog.Categories(),
			"priceRange": gin.H{"min": minPrice, "max": maxPrice},
		},
	})
}

func (s *Server) listCategories(c *gin.Context) {
	ok(c, http.StatusOK, "", gin.H{"categories": s.store.Catalog.Categories()})
}

func (s *Server) searchSuggestions(c *gin.Context) {
	q := c.Query("q")
	if len(q) < 2 {
		ok(c, http.StatusOK, "", gin.H{"suggestions": []store.Suggestion{}})
		return
	}
	ok(c, http.StatusOK, "", gin.H{"suggestions": s.store.Catalog.Suggestions(q, 5)})
}

func (s *Server) getProduct(c *gin.Context) {
	id := c.Param("id")

	if s.collab.Cache != nil {
		if p, hit := s.collab.Cache.Get(c.Request.Context(), id); hit {
			ok(c, http.StatusOK, "", gin.H{"product": p})
			return
		}
	}

	p, found := s.store.Catalog.Get(id)
	if !found {
		fail(c, http.StatusNotFound, "Product not found")
		return
	}

	if s.collab.Cache != nil {
		if err := s.collab.Cache.Set(c.Request.Context(), p); err != nil {
			s.logger.Warn("Failed to cache product", zap.String("id", id), zap.Error(err))
		}
	}

	ok(c, http.StatusOK, "", gin.H{"product": p})
}

func (s *Server) createProduct(c *gin.Context) {
	var input models.ProductInput
	if err := c.BindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	product := s.store.Catalog.Create(input)

	s.audit(currentUser(c).ID, "create_product", product.ID, bson.M{"name": product.Name})
	ok(c, http.StatusCreated, "Product created successfully", gin.H{"product": product})
}

func (s *Server) updateProduct(c *gin.Context) {
	id := c.Param("id")

	var patch models.ProductPatch
	if err := c.BindJSON(&patch); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	product, found := s.store.Catalog.Update(id, patch)
	if !found {
		fail(c, http.StatusNotFound, "Product not found")
		return
	}

	s.invalidateCache(c, id)
	s.audit(currentUser(c).ID, "update_product", id, bson.M{"name": product.Name})
	ok(c, http.StatusOK, "Product updated successfully", gin.H{"product": product})
}

func (s *Server) deleteProduct(c *gin.Context) {
	id := c.Param("id")

	product, found := s.store.Catalog.Delete(id)
	if !found {
		fail(c, http.StatusNotFound, "Product not found")
		return
	}

	s.invalidateCache(c, id)
	s.audit(currentUser(c).ID, "delete_product", id, bson.M{"name": product.Name})
	ok(c, http.StatusOK, "Product deleted successfully", nil)
}

func (s *Server) invalidateCache(c *gin.Context, ids ...string) {
	if s.collab.Cache == nil {
		return
	}
	if err := s.collab.Cache.Invalidate(c.Request.Context(), ids...); err != nil {
		s.logger.Warn("Failed to invalidate product cache", zap.Error(err))
	}
}

func intQuery(c *gin.Context, name string, def int) int {
	v := c.Query(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func priceRange(products []models.Product) (decimal.Decimal, decimal.Decimal) {
	if len(products) == 0 {
		return decimal.Zero, decimal.Zero
	}
	min, max := products[0].Price, products[0].Price
	for _, p := range products[1:] {
		if p.Price.LessThan(min) {
			min = p.Price
		}
		if p.Price.GreaterThan(max) {
			max = p.Price
		}
	}
	return min, max
}
