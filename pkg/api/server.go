// Package api exposes the storefront over HTTP. Handlers map requests
// onto the store and checkout operations and carry the route-level
// guards (stock checks, status-set membership, role checks) that the
// stores deliberately do not enforce.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/example/storefront/pkg/checkout"
	"github.com/example/storefront/pkg/config"
	"github.com/example/storefront/pkg/notify"
	"github.com/example/storefront/pkg/repository"
	"github.com/example/storefront/pkg/store"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Collaborators are the optional external systems the API talks to.
// Any of them may be nil; handlers skip them.
type Collaborators struct {
	Cache    *repository.ProductCache
	Audit    *repository.AuditTrail
	Archive  *repository.OrderArchive
	Notifier *notify.Notifier
}

type Server struct {
	config   *config.Config
	logger   *zap.Logger
	store    *store.Store
	checkout *checkout.Flow
	auth     Authenticator
	collab   Collaborators
	router   *gin.Engine
}

func NewServer(cfg *config.Config, logger *zap.Logger, st *store.Store, auth Authenticator, collab Collaborators) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggerMiddleware(logger))

	return &Server{
		config:   cfg,
		logger:   logger,
		store:    st,
		checkout: checkout.New(st),
		auth:     auth,
		collab:   collab,
		router:   router,
	}
}

func (s *Server) SetupRoutes() {
	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.router.Group("/api")
	{
		products := api.Group("/products")
		{
			products.GET("", s.listProducts)
			products.GET("/categories", s.listCategories)
			products.GET("/search/suggestions", s.searchSuggestions)
			products.GET("/:id", s.getProduct)
			products.POST("", s.requireAuth, s.requireAdmin, s.createProduct)
			products.PUT("/:id", s.requireAuth, s.requireAdmin, s.updateProduct)
			products.DELETE("/:id", s.requireAuth, s.requireAdmin, s.deleteProduct)
		}

		cart := api.Group("/cart", s.requireAuth)
		{
			cart.GET("", s.getCart)
			cart.POST("/add", s.addToCart)
			cart.PUT("/update", s.updateCartItem)
			cart.DELETE("/remove/:productId", s.removeFromCart)
			cart.DELETE("/clear", s.clearCart)
			cart.POST("/checkout", s.checkoutCart)
		}

		users := api.Group("/users", s.requireAuth)
		{
			users.GET("/profile", s.getProfile)
			users.PUT("/profile", s.updateProfile)
			users.GET("/orders", s.listMyOrders)
			users.GET("/orders/:orderId", s.getMyOrder)
			users.GET("", s.requireAdmin, s.listUsers)
			users.GET("/:userId", s.requireAdmin, s.getUser)
			users.PUT("/:userId/role", s.requireAdmin, s.updateUserRole)
		}

		orders := api.Group("/orders", s.requireAuth, s.requireAdmin)
		{
			orders.GET("/all", s.listAllOrders)
			orders.PUT("/:orderId/status", s.updateOrderStatus)
		}
	}

	// Swagger
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// audit records an action asynchronously; checkout and admin mutations
// must never wait on, or fail because of, the audit trail.
func (s *Server) audit(actorID, action, entityID string, data map[string]interface{}) {
	if s.collab.Audit == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.collab.Audit.Record(ctx, &repository.AuditEntry{
			Actor:    actorID,
			Action:   action,
			EntityID: entityID,
			Data:     data,
		})
		if err != nil {
			s.logger.Warn("Failed to record audit entry",
				zap.String("action", action),
				zap.String("entity_id", entityID),
				zap.Error(err))
		}
	}()
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Run() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.logger.Info("HTTP server starting", zap.String("address", addr))
	return s.router.Run(addr)
}
