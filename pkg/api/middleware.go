package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/example/storefront/pkg/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const userContextKey = "currentUser"

func loggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// requireAuth resolves the bearer token and stores the user on the
// context for downstream handlers.
func (s *Server) requireAuth(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || token == "" {
		fail(c, http.StatusUnauthorized, "Access token required")
		c.Abort()
		return
	}

	user, ok := s.auth.Authenticate(token)
	if !ok {
		fail(c, http.StatusForbidden, "Invalid or expired token")
		c.Abort()
		return
	}

	c.Set(userContextKey, user)
	c.Next()
}

func (s *Server) requireAdmin(c *gin.Context) {
	if currentUser(c).Role != models.RoleAdmin {
		fail(c, http.StatusForbidden, "Admin access required")
		c.Abort()
		return
	}
	c.Next()
}

func currentUser(c *gin.Context) models.User {
	user, _ := c.Get(userContextKey)
	u, _ := user.(models.User)
	return u
}
