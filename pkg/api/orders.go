package api

import (
	"context"
	"net/http"
	"time"

	"github.com/example/storefront/pkg/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type statusRequest struct {
	Status string `json:"status"`
}

func (s *Server) listMyOrders(c *gin.Context) {
	orders := s.store.Orders.ListByUser(currentUser(c).ID)
	ok(c, http.StatusOK, "", gin.H{"orders": orders})
}

func (s *Server) getMyOrder(c *gin.Context) {
	order, found := s.store.Orders.GetForUser(currentUser(c).ID, c.Param("orderId"))
	if !found {
		fail(c, http.StatusNotFound, "Order not found")
		return
	}
	ok(c, http.StatusOK, "", gin.H{"order": order})
}

func (s *Server) listAllOrders(c *gin.Context) {
	ok(c, http.StatusOK, "", gin.H{"orders": s.store.Orders.ListAll()})
}

// updateOrderStatus validates membership in the fixed status set; the
// store accepts any value and any transition order.
func (s *Server) updateOrderStatus(c *gin.Context) {
	var req statusRequest
	if err := c.BindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if !models.ValidOrderStatus(req.Status) {
		fail(c, http.StatusBadRequest, "Invalid status")
		return
	}

	orderID := c.Param("orderId")
	order, found := s.store.Orders.UpdateStatus(orderID, req.Status)
	if !found {
		fail(c, http.StatusNotFound, "Order not found")
		return
	}

	s.collab.Notifier.OrderStatusChanged(order)
	s.audit(currentUser(c).ID, "update_order_status", orderID, bson.M{"status": req.Status})
	if s.collab.Archive != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.collab.Archive.UpdateStatus(ctx, orderID, req.Status); err != nil {
				s.logger.Warn("Failed to update archived order", zap.String("order_id", orderID), zap.Error(err))
			}
		}()
	}

	ok(c, http.StatusOK, "Order status updated successfully", gin.H{"order": order})
}
