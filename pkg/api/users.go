package api

import (
	"net/http"

	"github.com/example/storefront/pkg/models"
	"github.com/example/storefront/pkg/store"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type profileRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type roleRequest struct {
	Role string `json:"role"`
}

func (s *Server) getProfile(c *gin.Context) {
	ok(c, http.StatusOK, "", gin.H{"user": currentUser(c)})
}

func (s *Server) updateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.BindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	user := currentUser(c)
	if req.Email != nil && *req.Email != user.Email {
		if existing, found := s.store.Users.FindByEmail(*req.Email); found && existing.ID != user.ID {
			fail(c, http.StatusBadRequest, "Email already in use")
			return
		}
	}

	updated, found := s.store.Users.Update(user.ID, store.UserPatch{Name: req.Name, Email: req.Email})
	if !found {
		fail(c, http.StatusNotFound, "User not found")
		return
	}
	ok(c, http.StatusOK, "Profile updated successfully", gin.H{"user": updated})
}

func (s *Server) listUsers(c *gin.Context) {
	ok(c, http.StatusOK, "", gin.H{"users": s.store.Users.List()})
}

func (s *Server) getUser(c *gin.Context) {
	user, found := s.store.Users.Get(c.Param("userId"))
	if !found {
		fail(c, http.StatusNotFound, "User not found")
		return
	}
	ok(c, http.StatusOK, "", gin.H{"user": user})
}

func (s *Server) updateUserRole(c *gin.Context) {
	var req roleRequest
	if err := c.BindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Role != models.RoleUser && req.Role != models.RoleAdmin {
		fail(c, http.StatusBadRequest, `Invalid role. Must be "user" or "admin"`)
		return
	}

	userID := c.Param("userId")
	user, found := s.store.Users.Update(userID, store.UserPatch{Role: &req.Role})
	if !found {
		fail(c, http.StatusNotFound, "User not found")
		return
	}

	s.audit(currentUser(c).ID, "update_user_role", userID, bson.M{"role": req.Role})
	ok(c, http.StatusOK, "User role updated successfully", gin.H{"user": user})
}
