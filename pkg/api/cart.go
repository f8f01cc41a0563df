package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type cartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

type checkoutRequest struct {
	ShippingAddress string `json:"shippingAddress"`
	PaymentMethod   string `json:"paymentMethod"`
}

func (s *Server) getCart(c *gin.Context) {
	ok(c, http.StatusOK, "", s.store.Cart.Summary(currentUser(c).ID))
}

// addToCart carries the route-level stock guard; the cart store itself
// accepts any quantity.
func (s *Server) addToCart(c *gin.Context) {
	var req cartItemRequest
	if err := c.BindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.ProductID == "" {
		fail(c, http.StatusBadRequest, "Product ID is required")
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if quantity < 1 {
		fail(c, http.StatusBadRequest, "Quantity must be at least 1")
		return
	}

	product, found := s.store.Catalog.Get(req.ProductID)
	if !found {
		fail(c, http.StatusNotFound, "Product not found")
		return
	}
	if product.Stock < quantity {
		fail(c, http.StatusBadRequest, fmt.Sprintf("Only %d items available in stock", product.Stock))
		return
	}

	user := currentUser(c)
	if err := s.store.Cart.Add(user.ID, req.ProductID, quantity); err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, "Item added to cart successfully", s.store.Cart.Summary(user.ID))
}

// updateCartItem re-checks stock only when the quantity grows; shrinking
// an over-committed line is always allowed.
func (s *Server) updateCartItem(c *gin.Context) {
	var req cartItemRequest
	if err := c.BindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.ProductID == "" {
		fail(c, http.StatusBadRequest, "Product ID is required")
		return
	}
	if req.Quantity == nil || *req.Quantity < 0 {
		fail(c, http.StatusBadRequest, "Quantity must be non-negative")
		return
	}
	quantity := *req.Quantity

	product, found := s.store.Catalog.Get(req.ProductID)
	if !found {
		fail(c, http.StatusNotFound, "Product not found")
		return
	}

	user := currentUser(c)
	current := 0
	for _, item := range s.store.Cart.Items(user.ID) {
		if item.ProductID == req.ProductID {
			current = item.Quantity
			break
		}
	}
	if quantity > current && product.Stock < quantity {
		fail(c, http.StatusBadRequest, fmt.Sprintf("Only %d items available in stock", product.Stock))
		return
	}

	s.store.Cart.UpdateQuantity(user.ID, req.ProductID, quantity)
	ok(c, http.StatusOK, "Cart updated successfully", s.store.Cart.Summary(user.ID))
}

func (s *Server) removeFromCart(c *gin.Context) {
	productID := c.Param("productId")

	if _, found := s.store.Catalog.Get(productID); !found {
		fail(c, http.StatusNotFound, "Product not found")
		return
	}

	user := currentUser(c)
	s.store.Cart.Remove(user.ID, productID)
	ok(c, http.StatusOK, "Item removed from cart successfully", s.store.Cart.Summary(user.ID))
}

func (s *Server) clearCart(c *gin.Context) {
	s.store.Cart.Clear(currentUser(c).ID)
	ok(c, http.StatusOK, "Cart cleared successfully", s.store.Cart.Summary(currentUser(c).ID))
}

func (s *Server) checkoutCart(c *gin.Context) {
	var req checkoutRequest
	if err := c.BindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	user := currentUser(c)
	order, err := s.checkout.Place(user.ID, req.ShippingAddress, req.PaymentMethod)
	if err != nil {
		failErr(c, err)
		return
	}

	s.collab.Notifier.OrderPlaced(order)
	s.audit(user.ID, "checkout", order.ID, bson.M{
		"total_amount": order.TotalAmount.StringFixed(2),
		"item_count":   len(order.Items),
	})
	if s.collab.Archive != nil {
		archived := order
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.collab.Archive.Save(ctx, archived); err != nil {
				s.logger.Warn("Failed to archive order", zap.String("order_id", archived.ID), zap.Error(err))
			}
		}()
	}

	ok(c, http.StatusCreated, "Order placed successfully", gin.H{"order": order})
}
